//go:build unit || e2e

package builder

import (
	"time"

	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/pkg/clock"
	"creator-sponsorship/internal/pkg/ptr"
	"creator-sponsorship/internal/usecase/queries"

	"github.com/google/uuid"
)

type fixedCodes struct{ code order.Code }

func (f fixedCodes) Generate() (order.Code, error) { return f.code, nil }

type OrderBuilder struct {
	CreatorUsername string
	Code            order.Code
	Items           []order.LineItem
	BuyerName       string
	Platform        string
	ContactValue    string
	Email           string
	Message         string
	Now             time.Time
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		CreatorUsername: "alice",
		Code:            "ABCD1234",
		Items: []order.LineItem{
			{
				Content:   sponsorship.ContentRef{ID: 603, Title: "The Matrix", MediaType: sponsorship.MediaTypeMovie, RuntimeMinutes: ptr.Of(136)},
				UnitPrice: sponsorship.NewMoney(8000),
			},
		},
		BuyerName:    "Bob",
		Platform:     "discord",
		ContactValue: "bob#1234",
		Message:      "Looking forward to it",
		Now:          time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) WithCreator(username string) *OrderBuilder {
	b.CreatorUsername = username
	return b
}

// WithEpisodes replaces the items with one line per episode of a series.
func (b *OrderBuilder) WithEpisodes(content sponsorship.ContentRef, unit sponsorship.Money, eps ...sponsorship.EpisodeRef) *OrderBuilder {
	b.Items = b.Items[:0]
	for _, ep := range eps {
		e := ep
		b.Items = append(b.Items, order.LineItem{Content: content, Episode: &e, UnitPrice: unit})
	}
	return b
}

// Build methods
func (b *OrderBuilder) BuildDomain() (*order.Order, error) {
	buyer, err := order.NewBuyerInfo(b.BuyerName, b.Platform, b.ContactValue, b.Email)
	if err != nil {
		return nil, err
	}
	f := order.NewFactory(clock.NewMockClock(b.Now), fixedCodes{code: b.Code})
	return f.CreateOrder(b.CreatorUsername, b.Items, buyer, b.Message, "USD")
}

func (b *OrderBuilder) MustBuildDomain() *order.Order {
	o, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return o
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	var subtotal, priority int64
	items := make([]queries.OrderItemView, 0, len(b.Items))
	for _, it := range b.Items {
		subtotal += it.UnitPrice.Cents()
		priority += it.PriorityPrice.Cents()
		items = append(items, queries.OrderItemView{
			ContentID:          it.Content.ID,
			Title:              it.Content.Title,
			MediaType:          string(it.Content.MediaType),
			Episode:            it.Episode,
			UnitPriceCents:     it.UnitPrice.Cents(),
			PriorityPriceCents: it.PriorityPrice.Cents(),
			WantsPriority:      it.WantsPriority,
		})
	}
	return &queries.OrderView{
		ID:                 uuid.New(),
		Code:               string(b.Code),
		CreatorUsername:    b.CreatorUsername,
		Items:              items,
		BuyerName:          b.BuyerName,
		ContactPlatform:    b.Platform,
		ContactValue:       b.ContactValue,
		Email:              ptr.NonEmpty(b.Email),
		Message:            b.Message,
		SubtotalCents:      subtotal,
		PriorityTotalCents: priority,
		TotalCents:         subtotal + priority,
		Currency:           "USD",
		Status:             string(order.StatusPending),
		CreatedAt:          b.Now,
	}
}

func (b *OrderBuilder) BuildListItem() *queries.OrderListItem {
	v := b.BuildView()
	return &queries.OrderListItem{
		ID:         v.ID,
		Code:       v.Code,
		BuyerName:  v.BuyerName,
		ItemCount:  len(v.Items),
		TotalCents: v.TotalCents,
		Currency:   v.Currency,
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
	}
}
