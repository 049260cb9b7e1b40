package repository

import (
	"context"

	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/infra/db"
	"creator-sponsorship/internal/usecase/shared"
)

const upsertCreatorProfileSQL = `
INSERT INTO creator_profiles (
	username, movie_price_short_cents, movie_price_long_cents, episode_price_cents,
	priority_price_cents, currency, contact_instructions, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (username) DO UPDATE
SET movie_price_short_cents = EXCLUDED.movie_price_short_cents,
	movie_price_long_cents = EXCLUDED.movie_price_long_cents,
	episode_price_cents = EXCLUDED.episode_price_cents,
	priority_price_cents = EXCLUDED.priority_price_cents,
	currency = EXCLUDED.currency,
	contact_instructions = EXCLUDED.contact_instructions,
	updated_at = EXCLUDED.updated_at`

type CreatorRepository struct {
	db db.DBTX
}

func NewCreatorRepository(db db.DBTX) *CreatorRepository {
	return &CreatorRepository{db: db}
}

func (r *CreatorRepository) UpsertProfile(ctx context.Context, tx db.DBTX, p shared.CreatorProfileSnapshot) error {
	pl := p.PriceList
	_, err := tx.Exec(ctx, upsertCreatorProfileSQL,
		p.Username,
		pl.MoviePriceShort.Cents(),
		pl.MoviePriceLong.Cents(),
		pl.EpisodePrice.Cents(),
		pl.PriorityPrice.Cents(),
		pl.Currency,
		p.ContactInstructions,
		p.UpdatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert creator profile", err)
	}
	return nil
}
