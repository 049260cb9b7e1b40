package readstore

import (
	"context"
	"time"

	"creator-sponsorship/internal/domain/notification"
	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/infra/converter"
	"creator-sponsorship/internal/infra/db"
	"creator-sponsorship/internal/pkg/pgconv"
	"creator-sponsorship/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	selectEventByIDSQL = `SELECT ` + converter.EventColumns + `
FROM notification_events
WHERE id = $1 AND creator_username = $2`

	selectEventsFirstPageSQL = `SELECT ` + converter.EventColumns + `
FROM notification_events
WHERE creator_username = $1 AND (NOT $2::bool OR NOT read)
ORDER BY created_at DESC, id DESC
LIMIT $3`

	selectEventsKeysetSQL = `SELECT ` + converter.EventColumns + `
FROM notification_events
WHERE creator_username = $1 AND (NOT $2::bool OR NOT read)
	AND (created_at, id) < ($3, $4)
ORDER BY created_at DESC, id DESC
LIMIT $5`

	countUnreadEventsSQL = `SELECT count(*) FROM notification_events WHERE creator_username = $1 AND NOT read`

	// SKIP LOCKED lets several dispatchers drain the outbox without double delivery.
	selectPendingJobsSQL = `
SELECT id, kind, topic, payload, run_at, attempts, status, last_error, created_at
FROM notification_jobs
WHERE status = 'queued' AND run_at <= now()
ORDER BY run_at, created_at
LIMIT $1
FOR UPDATE SKIP LOCKED`
)

type NotificationReadStore struct {
	db db.DBTX
}

func NewNotificationReadStore(db db.DBTX) *NotificationReadStore {
	return &NotificationReadStore{db: db}
}

func (s *NotificationReadStore) FindEvent(ctx context.Context, tx db.DBTX, creatorUsername string, id uuid.UUID) (*notification.Event, error) {
	ev, err := converter.ScanEvent(tx.QueryRow(ctx, selectEventByIDSQL, id, creatorUsername))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("notification not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get notification", err)
	}
	return ev, nil
}

func (s *NotificationReadStore) FindFirstPage(ctx context.Context, creatorUsername string, unreadOnly bool, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, selectEventsFirstPageSQL, creatorUsername, unreadOnly, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications", err)
	}
	return collectEvents(rows)
}

func (s *NotificationReadStore) FindKeyset(ctx context.Context, creatorUsername string, unreadOnly bool, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.NotificationView, error) {
	rows, err := s.db.Query(ctx, selectEventsKeysetSQL, creatorUsername, unreadOnly, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list notifications with keyset", err)
	}
	return collectEvents(rows)
}

func (s *NotificationReadStore) CountUnread(ctx context.Context, creatorUsername string) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, countUnreadEventsSQL, creatorUsername).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count unread notifications", err)
	}
	return n, nil
}

// GetPendingJobs locks due jobs until tx ends.
func (s *NotificationReadStore) GetPendingJobs(ctx context.Context, tx db.DBTX, limit int32) ([]*queries.NotificationJobView, error) {
	rows, err := tx.Query(ctx, selectPendingJobsSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get pending notification jobs", err)
	}
	defer rows.Close()

	result := make([]*queries.NotificationJobView, 0)
	for rows.Next() {
		var (
			v         queries.NotificationJobView
			lastError pgtype.Text
		)
		if err := rows.Scan(&v.ID, &v.Kind, &v.Topic, &v.Payload, &v.RunAt, &v.Attempts, &v.Status, &lastError, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification job", err)
		}
		v.LastError = pgconv.StringPtrFromPgtype(lastError)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notification jobs", err)
	}
	return result, nil
}

func collectEvents(rows pgx.Rows) ([]*queries.NotificationView, error) {
	defer rows.Close()
	result := make([]*queries.NotificationView, 0)
	for rows.Next() {
		ev, err := converter.ScanEvent(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan notification", err)
		}
		result = append(result, converter.EventToView(ev))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate notifications", err)
	}
	return result, nil
}
