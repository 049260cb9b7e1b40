package request

import (
	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/usecase/commands"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r *UpdateOrderStatusRequest) ToInput() commands.UpdateStatusInput {
	return commands.UpdateStatusInput{Status: order.Status(r.Status)}
}

// UpdatePriceListRequest is a partial update; nil fields keep their value.
type UpdatePriceListRequest struct {
	MoviePriceShortCents *int64  `json:"movie_price_short_cents" binding:"omitempty,min=0"`
	MoviePriceLongCents  *int64  `json:"movie_price_long_cents" binding:"omitempty,min=0"`
	EpisodePriceCents    *int64  `json:"episode_price_cents" binding:"omitempty,min=0"`
	PriorityPriceCents   *int64  `json:"priority_price_cents" binding:"omitempty,min=0"`
	Currency             *string `json:"currency" binding:"omitempty,len=3"`
	ContactInstructions  *string `json:"contact_instructions" binding:"omitempty,max=2000"`
}

func (r *UpdatePriceListRequest) ToInput() commands.UpdatePriceListInput {
	return commands.UpdatePriceListInput{
		MoviePriceShortCents: r.MoviePriceShortCents,
		MoviePriceLongCents:  r.MoviePriceLongCents,
		EpisodePriceCents:    r.EpisodePriceCents,
		PriorityPriceCents:   r.PriorityPriceCents,
		Currency:             r.Currency,
		ContactInstructions:  r.ContactInstructions,
	}
}
