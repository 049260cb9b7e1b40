package response

import (
	"creator-sponsorship/internal/pkg/money"
	"creator-sponsorship/internal/usecase/queries"

	"golang.org/x/text/language"
)

type LedgerEpisodeResponse struct {
	Season      int    `json:"season"`
	Episode     int    `json:"episode"`
	IsPaid      bool   `json:"is_paid"`
	IsPriority  bool   `json:"is_priority"`
	SponsorName string `json:"sponsor_name,omitempty"`
}

type LedgerEntryResponse struct {
	ContentID   int64                   `json:"content_id"`
	Title       string                  `json:"title"`
	MediaType   string                  `json:"media_type"`
	PosterRef   string                  `json:"poster_ref,omitempty"`
	IsPaid      bool                    `json:"is_paid"`
	IsPriority  bool                    `json:"is_priority"`
	Priority    string                  `json:"priority"`
	SponsorName string                  `json:"sponsor_name,omitempty"`
	Episodes    []LedgerEpisodeResponse `json:"episodes,omitempty"`
	UpdatedAt   int64                   `json:"updated_at"`
}

func FromLedgerEntry(v *queries.LedgerEntryView) *LedgerEntryResponse {
	res := &LedgerEntryResponse{}
	copyView(res, v)
	return res
}

func FromLedgerEntries(vs []*queries.LedgerEntryView) []*LedgerEntryResponse {
	res := make([]*LedgerEntryResponse, len(vs))
	for i, v := range vs {
		res[i] = FromLedgerEntry(v)
	}
	return res
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	OrderCode string `json:"order_code"`
	Message   string `json:"message"`
	BuyerName string `json:"buyer_name"`
	CreatedAt int64  `json:"created_at"`
	Read      bool   `json:"read"`
}

type NotificationListResponse struct {
	Items       []*NotificationResponse `json:"items"`
	UnreadCount int64                   `json:"unread_count"`
	NextCursor  string                  `json:"next_cursor,omitempty"`
}

func FromNotifications(vs []*queries.NotificationView) []*NotificationResponse {
	res := make([]*NotificationResponse, len(vs))
	for i, v := range vs {
		r := &NotificationResponse{}
		copyView(r, v)
		res[i] = r
	}
	return res
}

type PriceListResponse struct {
	CreatorUsername      string `json:"creator_username"`
	MoviePriceShortCents int64  `json:"movie_price_short_cents"`
	MoviePriceLongCents  int64  `json:"movie_price_long_cents"`
	EpisodePriceCents    int64  `json:"episode_price_cents"`
	PriorityPriceCents   int64  `json:"priority_price_cents"`
	Currency             string `json:"currency"`
	ContactInstructions  string `json:"contact_instructions,omitempty"`
	MoviePriceShort      string `json:"movie_price_short" copier:"-"`
	MoviePriceLong       string `json:"movie_price_long" copier:"-"`
	EpisodePrice         string `json:"episode_price" copier:"-"`
	PriorityPrice        string `json:"priority_price" copier:"-"`
	UpdatedAt            int64  `json:"updated_at"`
}

func FromPriceListView(v *queries.PriceListView) *PriceListResponse {
	res := &PriceListResponse{}
	copyView(res, v)
	res.MoviePriceShort = money.Format(v.MoviePriceShortCents, v.Currency, language.English)
	res.MoviePriceLong = money.Format(v.MoviePriceLongCents, v.Currency, language.English)
	res.EpisodePrice = money.Format(v.EpisodePriceCents, v.Currency, language.English)
	res.PriorityPrice = money.Format(v.PriorityPriceCents, v.Currency, language.English)
	return res
}
