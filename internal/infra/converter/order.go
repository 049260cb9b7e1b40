package converter

import (
	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/pkg/ptr"
	"creator-sponsorship/internal/usecase/queries"
)

func OrderToView(o *order.Order) *queries.OrderView {
	buyer := o.Buyer()
	return &queries.OrderView{
		ID:                 o.ID(),
		Code:               o.Code().String(),
		CreatorUsername:    o.CreatorUsername(),
		Items:              ItemsToView(o.Items()),
		BuyerName:          buyer.Name(),
		ContactPlatform:    string(buyer.ContactPlatform()),
		ContactValue:       buyer.ContactValue(),
		Email:              ptr.NonEmpty(buyer.Email()),
		Message:            o.Message(),
		SubtotalCents:      o.Subtotal().Cents(),
		PriorityTotalCents: o.PriorityTotal().Cents(),
		TotalCents:         o.Total().Cents(),
		Currency:           o.Currency(),
		Status:             string(o.Status()),
		CreatedAt:          o.CreatedAt(),
		PaidAt:             o.PaidAt(),
	}
}

func OrderToListItem(o *order.Order) *queries.OrderListItem {
	return &queries.OrderListItem{
		ID:         o.ID(),
		Code:       o.Code().String(),
		BuyerName:  o.Buyer().Name(),
		ItemCount:  len(o.Items()),
		TotalCents: o.Total().Cents(),
		Currency:   o.Currency(),
		Status:     string(o.Status()),
		CreatedAt:  o.CreatedAt(),
	}
}

func ItemsToView(items []order.LineItem) []queries.OrderItemView {
	out := make([]queries.OrderItemView, 0, len(items))
	for _, it := range items {
		out = append(out, queries.OrderItemView{
			ContentID:          it.Content.ID,
			Title:              it.Content.Title,
			MediaType:          string(it.Content.MediaType),
			PosterRef:          it.Content.PosterRef,
			RuntimeMinutes:     it.Content.RuntimeMinutes,
			Episode:            it.Episode,
			UnitPriceCents:     it.UnitPrice.Cents(),
			PriorityPriceCents: it.PriorityPrice.Cents(),
			WantsPriority:      it.WantsPriority,
		})
	}
	return out
}

func LedgerToView(e *sponsorship.LedgerEntry) *queries.LedgerEntryView {
	content := e.Content()
	v := &queries.LedgerEntryView{
		ContentID:   content.ID,
		Title:       content.Title,
		MediaType:   string(content.MediaType),
		PosterRef:   content.PosterRef,
		IsPaid:      e.IsPaid(),
		IsPriority:  e.IsPriority(),
		Priority:    string(e.Priority()),
		SponsorName: e.SponsorName(),
		UpdatedAt:   e.UpdatedAt(),
	}
	for _, r := range e.Episodes() {
		v.Episodes = append(v.Episodes, queries.LedgerEpisodeView{
			Season:      r.Season,
			Episode:     r.Episode,
			IsPaid:      r.IsPaid,
			IsPriority:  r.IsPriority,
			SponsorName: r.SponsorName,
		})
	}
	return v
}
