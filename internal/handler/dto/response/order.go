package response

import (
	"time"

	"creator-sponsorship/internal/pkg/money"
	"creator-sponsorship/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"golang.org/x/text/language"
)

// Read models carry time.Time and uuid.UUID; responses expose unix seconds and strings.
var viewCopyOption = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: int64(0),
			Fn: func(src any) (any, error) {
				return src.(time.Time).Unix(), nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

// copyView panics on mismatched DTO definitions, which only a programming error can cause.
func copyView(dst, src any) {
	if err := copier.CopyWithOption(dst, src, viewCopyOption); err != nil {
		panic(err)
	}
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := t.Unix()
	return &v
}

type OrderItemResponse struct {
	ContentID          int64  `json:"content_id"`
	Title              string `json:"title"`
	MediaType          string `json:"media_type"`
	PosterRef          string `json:"poster_ref,omitempty"`
	RuntimeMinutes     *int   `json:"runtime_minutes,omitempty"`
	Season             *int   `json:"season,omitempty"`
	Episode            *int   `json:"episode,omitempty"`
	EpisodeName        string `json:"episode_name,omitempty"`
	UnitPriceCents     int64  `json:"unit_price_cents"`
	PriorityPriceCents int64  `json:"priority_price_cents"`
	WantsPriority      bool   `json:"wants_priority"`
}

type OrderResponse struct {
	ID                 string              `json:"id"`
	Code               string              `json:"code"`
	CreatorUsername    string              `json:"creator_username"`
	Items              []OrderItemResponse `json:"items" copier:"-"`
	BuyerName          string              `json:"buyer_name"`
	ContactPlatform    string              `json:"contact_platform"`
	ContactValue       string              `json:"contact_value"`
	Email              *string             `json:"email,omitempty"`
	Message            string              `json:"message,omitempty"`
	SubtotalCents      int64               `json:"subtotal_cents"`
	PriorityTotalCents int64               `json:"priority_total_cents"`
	TotalCents         int64               `json:"total_cents"`
	TotalDisplay       string              `json:"total_display" copier:"-"`
	Currency           string              `json:"currency"`
	Status             string              `json:"status"`
	CreatedAt          int64               `json:"created_at"`
	PaidAt             *int64              `json:"paid_at,omitempty" copier:"-"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	res := &OrderResponse{}
	copyView(res, v)
	res.TotalDisplay = money.Format(v.TotalCents, v.Currency, language.English)
	res.PaidAt = unixPtr(v.PaidAt)
	res.Items = make([]OrderItemResponse, 0, len(v.Items))
	for _, it := range v.Items {
		item := OrderItemResponse{
			ContentID:          it.ContentID,
			Title:              it.Title,
			MediaType:          it.MediaType,
			PosterRef:          it.PosterRef,
			RuntimeMinutes:     it.RuntimeMinutes,
			UnitPriceCents:     it.UnitPriceCents,
			PriorityPriceCents: it.PriorityPriceCents,
			WantsPriority:      it.WantsPriority,
		}
		if it.Episode != nil {
			season, episode := it.Episode.Season, it.Episode.Episode
			item.Season, item.Episode = &season, &episode
			item.EpisodeName = it.Episode.Name
		}
		res.Items = append(res.Items, item)
	}
	return res
}

type OrderListItemResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	BuyerName    string `json:"buyer_name"`
	ItemCount    int    `json:"item_count"`
	TotalCents   int64  `json:"total_cents"`
	TotalDisplay string `json:"total_display" copier:"-"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"created_at"`
}

func FromOrderList(items []*queries.OrderListItem) []*OrderListItemResponse {
	res := make([]*OrderListItemResponse, len(items))
	for i, it := range items {
		r := &OrderListItemResponse{}
		copyView(r, it)
		r.TotalDisplay = money.Format(it.TotalCents, it.Currency, language.English)
		res[i] = r
	}
	return res
}

type OrderListResponse struct {
	Items      []*OrderListItemResponse `json:"items"`
	NextCursor string                   `json:"next_cursor,omitempty"`
}
