package readstore

import (
	"context"
	"time"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/infra/db"
	"creator-sponsorship/internal/pkg/pgconv"
	"creator-sponsorship/internal/usecase/queries"
	"creator-sponsorship/internal/usecase/shared"
)

const selectCreatorProfileSQL = `
SELECT username, movie_price_short_cents, movie_price_long_cents, episode_price_cents,
	priority_price_cents, currency, contact_instructions, updated_at
FROM creator_profiles
WHERE username = $1`

type CreatorReadStore struct {
	db db.DBTX
}

func NewCreatorReadStore(db db.DBTX) *CreatorReadStore {
	return &CreatorReadStore{db: db}
}

func (r *CreatorReadStore) FindProfile(ctx context.Context, tx db.DBTX, username string) (*shared.CreatorProfileSnapshot, error) {
	var (
		p                              shared.CreatorProfileSnapshot
		short, long, episode, priority int64
		currency                       string
		updatedAt                      time.Time
	)
	err := tx.QueryRow(ctx, selectCreatorProfileSQL, username).
		Scan(&p.Username, &short, &long, &episode, &priority, &currency, &p.ContactInstructions, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("creator not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get creator profile", err)
	}
	p.PriceList = sponsorship.PriceList{
		MoviePriceShort: sponsorship.NewMoney(short),
		MoviePriceLong:  sponsorship.NewMoney(long),
		EpisodePrice:    sponsorship.NewMoney(episode),
		PriorityPrice:   sponsorship.NewMoney(priority),
		Currency:        currency,
	}
	p.UpdatedAt = updatedAt.UTC()
	return &p, nil
}

func (r *CreatorReadStore) FindPriceList(ctx context.Context, creatorUsername string) (*queries.PriceListView, error) {
	p, err := r.FindProfile(ctx, r.db, creatorUsername)
	if err != nil {
		return nil, err
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
