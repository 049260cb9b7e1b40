package queries

import (
	"time"

	"creator-sponsorship/internal/domain/sponsorship"

	"github.com/google/uuid"
)

type OrderItemView struct {
	ContentID          int64                   `json:"content_id"`
	Title              string                  `json:"title"`
	MediaType          string                  `json:"media_type"`
	PosterRef          string                  `json:"poster_ref,omitempty"`
	RuntimeMinutes     *int                    `json:"runtime_minutes,omitempty"`
	Episode            *sponsorship.EpisodeRef `json:"episode,omitempty"`
	UnitPriceCents     int64                   `json:"unit_price_cents"`
	PriorityPriceCents int64                   `json:"priority_price_cents"`
	WantsPriority      bool                    `json:"wants_priority"`
}

type OrderView struct {
	ID                 uuid.UUID       `json:"id"`
	Code               string          `json:"code"`
	CreatorUsername    string          `json:"creator_username"`
	Items              []OrderItemView `json:"items"`
	BuyerName          string          `json:"buyer_name"`
	ContactPlatform    string          `json:"contact_platform"`
	ContactValue       string          `json:"contact_value"`
	Email              *string         `json:"email,omitempty"`
	Message            string          `json:"message,omitempty"`
	SubtotalCents      int64           `json:"subtotal_cents"`
	PriorityTotalCents int64           `json:"priority_total_cents"`
	TotalCents         int64           `json:"total_cents"`
	Currency           string          `json:"currency"`
	Status             string          `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
	PaidAt             *time.Time      `json:"paid_at,omitempty"`
}

type OrderListItem struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	BuyerName  string    `json:"buyer_name"`
	ItemCount  int       `json:"item_count"`
	TotalCents int64     `json:"total_cents"`
	Currency   string    `json:"currency"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type LedgerEpisodeView struct {
	Season      int    `json:"season"`
	Episode     int    `json:"episode"`
	IsPaid      bool   `json:"is_paid"`
	IsPriority  bool   `json:"is_priority"`
	SponsorName string `json:"sponsor_name,omitempty"`
}

type LedgerEntryView struct {
	ContentID   int64               `json:"content_id"`
	Title       string              `json:"title"`
	MediaType   string              `json:"media_type"`
	PosterRef   string              `json:"poster_ref,omitempty"`
	IsPaid      bool                `json:"is_paid"`
	IsPriority  bool                `json:"is_priority"`
	Priority    string              `json:"priority"`
	SponsorName string              `json:"sponsor_name,omitempty"`
	Episodes    []LedgerEpisodeView `json:"episodes,omitempty"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

type NotificationView struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	OrderCode string    `json:"order_code"`
	Message   string    `json:"message"`
	BuyerName string    `json:"buyer_name"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

type PriceListView struct {
	CreatorUsername      string    `json:"creator_username"`
	MoviePriceShortCents int64     `json:"movie_price_short_cents"`
	MoviePriceLongCents  int64     `json:"movie_price_long_cents"`
	EpisodePriceCents    int64     `json:"episode_price_cents"`
	PriorityPriceCents   int64     `json:"priority_price_cents"`
	Currency             string    `json:"currency"`
	ContactInstructions  string    `json:"contact_instructions,omitempty"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
