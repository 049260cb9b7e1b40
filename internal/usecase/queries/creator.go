package queries

import (
	"context"

	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/pkg/errs"
)

var ErrCreatorNotFound = errs.NotFound("creator not found")

type CreatorReadStore interface {
	FindPriceList(ctx context.Context, creatorUsername string) (*PriceListView, error)
}

type CreatorQueries interface {
	GetPriceList(ctx context.Context, creatorUsername string) (*PriceListView, error)
}

type creatorQueriesImpl struct {
	store CreatorReadStore
}

func NewCreatorQueries(store CreatorReadStore) CreatorQueries {
	return &creatorQueriesImpl{store: store}
}

func (q *creatorQueriesImpl) GetPriceList(ctx context.Context, creatorUsername string) (*PriceListView, error) {
	v, err := q.store.FindPriceList(ctx, creatorUsername)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCreatorNotFound
		}
		return nil, err
	}
	return v, nil
}
