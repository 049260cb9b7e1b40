package repository

import (
	"context"
	"encoding/json"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/infra/converter"
	"creator-sponsorship/internal/infra/db"
	"creator-sponsorship/internal/pkg/pgconv"
)

const (
	selectLedgerForUpdateSQL = `SELECT ` + converter.LedgerColumns + `
FROM sponsorship_ledger
WHERE creator_username = $1 AND content_id = $2
FOR UPDATE`

	// A concurrent first insert loses the race and reports zero rows.
	insertLedgerSQL = `
INSERT INTO sponsorship_ledger (
	creator_username, content_id, media_type, title, poster_ref, runtime_minutes,
	is_paid, is_priority, priority, sponsor_name, episodes, version, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 1, $12)
ON CONFLICT (creator_username, content_id) DO NOTHING`

	updateLedgerSQL = `
UPDATE sponsorship_ledger
SET title = $4, poster_ref = $5, runtime_minutes = $6, is_paid = $7, is_priority = $8,
	priority = $9, sponsor_name = $10, episodes = $11, updated_at = $12, version = version + 1
WHERE creator_username = $1 AND content_id = $2 AND version = $3`
)

// LedgerRepository is written to only by order reconciliation.
type LedgerRepository struct {
	db db.DBTX
}

func NewLedgerRepository(db db.DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

func (r *LedgerRepository) FindForUpdate(ctx context.Context, tx db.DBTX, creatorUsername string, contentID int64) (*sponsorship.LedgerEntry, error) {
	e, err := converter.ScanLedgerEntry(tx.QueryRow(ctx, selectLedgerForUpdateSQL, creatorUsername, contentID))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to lock ledger entry", err)
	}
	return e, nil
}

// Save inserts entries with version 0 and otherwise updates guarded by the loaded version.
func (r *LedgerRepository) Save(ctx context.Context, tx db.DBTX, e *sponsorship.LedgerEntry) error {
	episodes := e.Episodes()
	if episodes == nil {
		episodes = []sponsorship.EpisodeRecord{}
	}
	raw, err := json.Marshal(episodes)
	if err != nil {
		return infra.WrapRepoErr("failed to encode ledger episodes", err, infra.KindConstraintViolated)
	}
	c := e.Content()

	if e.Version() == 0 {
		tag, err := tx.Exec(ctx, insertLedgerSQL,
			e.CreatorUsername(), c.ID, string(c.MediaType), c.Title, c.PosterRef, pgconv.IntPtrToPgtype(c.RuntimeMinutes),
			e.IsPaid(), e.IsPriority(), string(e.Priority()), e.SponsorName(), raw, e.UpdatedAt())
		if err != nil {
			return infra.WrapRepoErr("failed to insert ledger entry", err)
		}
		if tag.RowsAffected() == 0 {
			return infra.WrapRepoErr("ledger entry created concurrently", nil, infra.KindConflict)
		}
		return nil
	}

	tag, err := tx.Exec(ctx, updateLedgerSQL,
		e.CreatorUsername(), c.ID, e.Version(), c.Title, c.PosterRef, pgconv.IntPtrToPgtype(c.RuntimeMinutes),
		e.IsPaid(), e.IsPriority(), string(e.Priority()), e.SponsorName(), raw, e.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update ledger entry", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ledger version mismatch", nil, infra.KindConflict)
	}
	return nil
}
