package readstore

import (
	"context"
	"time"

	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/infra/db"
	"creator-sponsorship/internal/pkg/pgconv"
	"creator-sponsorship/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const selectIdempotencyKeySQL = `
SELECT key, scope, status, request_hash, result_order_id, expires_at
FROM idempotency_keys
WHERE key = $1 AND scope = $2`

type IdempotencyReadStore struct{}

func NewIdempotencyReadStore() *IdempotencyReadStore {
	return &IdempotencyReadStore{}
}

func (r *IdempotencyReadStore) Get(ctx context.Context, tx db.DBTX, key uuid.UUID, scope string) (*shared.IdempotencyRecord, error) {
	var (
		record   shared.IdempotencyRecord
		resultID pgtype.UUID
	)
	err := tx.QueryRow(ctx, selectIdempotencyKeySQL, key, scope).
		Scan(&record.Key, &record.Scope, &record.Status, &record.RequestHash, &resultID, &record.ExpiresAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	record.ResultOrderID = pgconv.UUIDPtrFromPgtype(resultID)

	if time.Now().After(record.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}
	return &record, nil
}
