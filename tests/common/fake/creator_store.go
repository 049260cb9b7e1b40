//go:build unit

package fake

import (
	"context"

	"creator-sponsorship/internal/usecase/queries"
)

var _ queries.CreatorReadStore = (*UoW)(nil)

func (u *UoW) FindPriceList(_ context.Context, creator string) (*queries.PriceListView, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	p, ok := u.st.creators[creator]
	if !ok {
		return nil, notFound("creator not found")
	}
	return &queries.PriceListView{
		CreatorUsername:      p.Username,
		MoviePriceShortCents: p.PriceList.MoviePriceShort.Cents(),
		MoviePriceLongCents:  p.PriceList.MoviePriceLong.Cents(),
		EpisodePriceCents:    p.PriceList.EpisodePrice.Cents(),
		PriorityPriceCents:   p.PriceList.PriorityPrice.Cents(),
		Currency:             p.PriceList.Currency,
		ContactInstructions:  p.ContactInstructions,
		UpdatedAt:            p.UpdatedAt,
	}, nil
}
