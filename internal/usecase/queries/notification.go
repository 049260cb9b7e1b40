package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type NotificationReadStore interface {
	FindFirstPage(ctx context.Context, creatorUsername string, unreadOnly bool, limit int32) ([]*NotificationView, error)
	FindKeyset(ctx context.Context, creatorUsername string, unreadOnly bool, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*NotificationView, error)
	CountUnread(ctx context.Context, creatorUsername string) (int64, error)
}

type NotificationQueries interface {
	List(ctx context.Context, creatorUsername string, unreadOnly bool, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error)
	UnreadCount(ctx context.Context, creatorUsername string) (int64, error)
}

type notificationQueriesImpl struct {
	store NotificationReadStore
}

func NewNotificationQueries(store NotificationReadStore) NotificationQueries {
	return &notificationQueriesImpl{store: store}
}

func (q *notificationQueriesImpl) List(ctx context.Context, creatorUsername string, unreadOnly bool, cursor *Cursor, limit int) ([]*NotificationView, *Cursor, error) {
	limit = ValidateLimit(limit)
	ks, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}

	var rows []*NotificationView
	if ks == nil {
		rows, err = q.store.FindFirstPage(ctx, creatorUsername, unreadOnly, int32(limit+1))
	} else {
		rows, err = q.store.FindKeyset(ctx, creatorUsername, unreadOnly, ks.CreatedAt, ks.ID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, func(n *NotificationView) (time.Time, uuid.UUID) { return n.CreatedAt, n.ID })
	return rows, next, nil
}

func (q *notificationQueriesImpl) UnreadCount(ctx context.Context, creatorUsername string) (int64, error) {
	return q.store.CountUnread(ctx, creatorUsername)
}
