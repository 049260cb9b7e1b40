package queries

import (
	"context"

	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/pkg/errs"
)

var ErrLedgerEntryNotFound = errs.NotFound("ledger entry not found")

type LedgerReadStore interface {
	FindByCreator(ctx context.Context, creatorUsername string) ([]*LedgerEntryView, error)
	FindByContent(ctx context.Context, creatorUsername string, contentID int64) (*LedgerEntryView, error)
}

// LedgerQueries is the organizer catalogue view of what has been sponsored.
type LedgerQueries interface {
	List(ctx context.Context, creatorUsername string) ([]*LedgerEntryView, error)
	Get(ctx context.Context, creatorUsername string, contentID int64) (*LedgerEntryView, error)
}

type ledgerQueriesImpl struct {
	store LedgerReadStore
}

func NewLedgerQueries(store LedgerReadStore) LedgerQueries {
	return &ledgerQueriesImpl{store: store}
}

func (q *ledgerQueriesImpl) List(ctx context.Context, creatorUsername string) ([]*LedgerEntryView, error) {
	return q.store.FindByCreator(ctx, creatorUsername)
}

func (q *ledgerQueriesImpl) Get(ctx context.Context, creatorUsername string, contentID int64) (*LedgerEntryView, error) {
	v, err := q.store.FindByContent(ctx, creatorUsername, contentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLedgerEntryNotFound
		}
		return nil, err
	}
	return v, nil
}
