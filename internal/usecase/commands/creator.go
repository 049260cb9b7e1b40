package commands

import (
	"context"
	"strings"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/pkg/clock"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/pkg/money"
	"creator-sponsorship/internal/pkg/patch"
	"creator-sponsorship/internal/usecase/queries"
	"creator-sponsorship/internal/usecase/shared"
)

var (
	ErrInvalidCurrency = errs.Validation("invalid currency code")
	ErrNegativePrice   = errs.Validation("prices cannot be negative")
	ErrEmptyCreator    = errs.Validation("creator username is required")
)

type CreatorCommands interface {
	// UpdatePriceList creates the profile on first use. Omitted fields keep their value.
	UpdatePriceList(ctx context.Context, creatorUsername string, in UpdatePriceListInput) (*queries.PriceListView, error)
}

type creatorUseCaseImpl struct {
	uow            shared.UnitOfWork
	creatorQueries queries.CreatorQueries
	clock          clock.Clock
}

func NewCreatorUseCase(uow shared.UnitOfWork, creatorQueries queries.CreatorQueries, clk clock.Clock) CreatorCommands {
	return &creatorUseCaseImpl{uow: uow, creatorQueries: creatorQueries, clock: clk}
}

func (uc *creatorUseCaseImpl) UpdatePriceList(ctx context.Context, creatorUsername string, in UpdatePriceListInput) (*queries.PriceListView, error) {
	creatorUsername = strings.TrimSpace(creatorUsername)
	if creatorUsername == "" {
		return nil, ErrEmptyCreator
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current := shared.CreatorProfileSnapshot{Username: creatorUsername, PriceList: sponsorship.PriceList{Currency: money.DefaultCurrency}}
		existing, err := tx.Reads().CreatorProfile(ctx, creatorUsername)
		switch {
		case err == nil:
			current = *existing
		case !infra.IsKind(err, infra.KindNotFound):
			return err
		}

		currency, err := money.NormalizeCode(patch.Coalesce(in.Currency, current.PriceList.Currency))
		if err != nil {
			return ErrInvalidCurrency
		}
		pl := current.PriceList
		next, err := sponsorship.NewPriceList(
			patch.Coalesce(in.MoviePriceShortCents, pl.MoviePriceShort.Cents()),
			patch.Coalesce(in.MoviePriceLongCents, pl.MoviePriceLong.Cents()),
			patch.Coalesce(in.EpisodePriceCents, pl.EpisodePrice.Cents()),
			patch.Coalesce(in.PriorityPriceCents, pl.PriorityPrice.Cents()),
			currency,
		)
		if err != nil {
			return ErrNegativePrice
		}

		return tx.Creators().UpsertProfile(ctx, tx.DB(), shared.CreatorProfileSnapshot{
			Username:            creatorUsername,
			PriceList:           next,
			ContactInstructions: strings.TrimSpace(patch.Coalesce(in.ContactInstructions, current.ContactInstructions)),
			UpdatedAt:           uc.clock.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	return uc.creatorQueries.GetPriceList(ctx, creatorUsername)
}
