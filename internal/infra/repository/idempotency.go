package repository

import (
	"context"
	"time"

	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/infra/db"
	"creator-sponsorship/internal/pkg/pgconv"
	"creator-sponsorship/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	// Expired keys are taken over so a session can be resubmitted after the window.
	tryInsertIdempotencyKeySQL = `
INSERT INTO idempotency_keys (key, scope, endpoint, request_hash, status, expires_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (key, scope) DO UPDATE
SET endpoint = EXCLUDED.endpoint, request_hash = EXCLUDED.request_hash, status = EXCLUDED.status,
	response_hash = NULL, result_order_id = NULL, expires_at = EXCLUDED.expires_at, created_at = now()
WHERE idempotency_keys.expires_at < now()`

	updateIdempotencyKeyCompletedSQL = `
UPDATE idempotency_keys
SET status = $3, response_hash = $4, result_order_id = $5
WHERE key = $1 AND scope = $2`

	deleteExpiredIdempotencyKeysSQL = `DELETE FROM idempotency_keys WHERE expires_at < now()`
)

type IdempotencyRepository struct {
	db db.DBTX
}

func NewIdempotencyRepository(db db.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx db.DBTX, key uuid.UUID, scope, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	tag, err := tx.Exec(ctx, tryInsertIdempotencyKeySQL, key, scope, endpoint, requestHash, shared.IdempotencyStatusProcessing, pgconv.TimeToPgtype(expiresAt))
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, scope, resultHash string, orderID uuid.UUID) error {
	tag, err := tx.Exec(ctx, updateIdempotencyKeyCompletedSQL, key, scope, shared.IdempotencyStatusCompleted, resultHash, orderID)
	if err != nil {
		return infra.WrapRepoErr("failed to update idempotency key status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteExpiredIdempotencyKeysSQL)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return tag.RowsAffected(), nil
}
