package readstore

import (
	"context"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/infra/converter"
	"creator-sponsorship/internal/infra/db"
	"creator-sponsorship/internal/pkg/pgconv"
	"creator-sponsorship/internal/usecase/queries"
)

const (
	selectLedgerByCreatorSQL = `SELECT ` + converter.LedgerColumns + `
FROM sponsorship_ledger
WHERE creator_username = $1
ORDER BY updated_at DESC, content_id`

	selectLedgerByContentSQL = `SELECT ` + converter.LedgerColumns + `
FROM sponsorship_ledger
WHERE creator_username = $1 AND content_id = $2`
)

type LedgerReadStore struct {
	db db.DBTX
}

func NewLedgerReadStore(db db.DBTX) *LedgerReadStore {
	return &LedgerReadStore{db: db}
}

func (r *LedgerReadStore) FindByCreator(ctx context.Context, creatorUsername string) ([]*queries.LedgerEntryView, error) {
	rows, err := r.db.Query(ctx, selectLedgerByCreatorSQL, creatorUsername)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ledger entries", err)
	}
	defer rows.Close()

	result := make([]*queries.LedgerEntryView, 0)
	for rows.Next() {
		e, err := converter.ScanLedgerEntry(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan ledger entry", err)
		}
		result = append(result, converter.LedgerToView(e))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ledger entries", err)
	}
	return result, nil
}

func (r *LedgerReadStore) FindByContent(ctx context.Context, creatorUsername string, contentID int64) (*queries.LedgerEntryView, error) {
	e, err := r.FindEntry(ctx, r.db, creatorUsername, contentID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, infra.WrapRepoErr("ledger entry not found", nil, infra.KindNotFound)
	}
	return converter.LedgerToView(e), nil
}

// FindEntry returns nil without error when the content was never sponsored.
func (r *LedgerReadStore) FindEntry(ctx context.Context, tx db.DBTX, creatorUsername string, contentID int64) (*sponsorship.LedgerEntry, error) {
	e, err := converter.ScanLedgerEntry(tx.QueryRow(ctx, selectLedgerByContentSQL, creatorUsername, contentID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get ledger entry", err)
	}
	return e, nil
}
