package repository

import (
	"context"
	"time"

	"creator-sponsorship/internal/domain/notification"
	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/infra/db"
	"creator-sponsorship/internal/pkg/pgconv"

	"github.com/google/uuid"
)

const (
	JobStatusQueued  = "queued"
	JobStatusRunning = "running"
	JobStatusDone    = "done"
	JobStatusFailed  = "failed"
)

const (
	insertEventSQL = `
INSERT INTO notification_events (id, creator_username, type, order_code, message, buyer_name, read, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	updateEventReadSQL = `UPDATE notification_events SET read = $2 WHERE id = $1`

	insertJobSQL = `
INSERT INTO notification_jobs (kind, topic, payload, run_at, status)
VALUES ($1, $2, $3, $4, $5)`

	updateJobStatusSQL = `
UPDATE notification_jobs
SET status = $2, last_error = $3, attempts = attempts + 1, run_at = $4, updated_at = now()
WHERE id = $1`
)

type NotificationRepository struct {
	db db.DBTX
}

func NewNotificationRepository(db db.DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateEvent(ctx context.Context, tx db.DBTX, ev *notification.Event) error {
	_, err := tx.Exec(ctx, insertEventSQL,
		ev.ID(), ev.CreatorUsername(), string(ev.Type()), ev.OrderCode(), ev.Message(), ev.BuyerName(), ev.Read(), ev.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create notification event", err)
	}
	return nil
}

func (r *NotificationRepository) UpdateRead(ctx context.Context, tx db.DBTX, ev *notification.Event) error {
	tag, err := tx.Exec(ctx, updateEventReadSQL, ev.ID(), ev.Read())
	if err != nil {
		return infra.WrapRepoErr("failed to update notification event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("notification event not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, insertJobSQL, kind, topic, payload, pgconv.TimeToPgtype(runAt), JobStatusQueued)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

// UpdateJobStatus records one delivery attempt. runAt reschedules queued jobs.
func (r *NotificationRepository) UpdateJobStatus(ctx context.Context, tx db.DBTX, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error {
	_, err := tx.Exec(ctx, updateJobStatusSQL, jobID, status, pgconv.StringPtrToPgtype(lastError), pgconv.TimeToPgtype(runAt))
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	return nil
}
