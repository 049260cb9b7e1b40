package queries

import (
	"context"
	"time"

	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.NotFound("order not found")
	ErrInvalidStatus = errs.Validation("invalid order status filter")
)

type OrderFilters struct {
	Status *string
}

type OrderReadStore interface {
	FindByID(ctx context.Context, creatorUsername string, id uuid.UUID) (*OrderView, error)
	// FindByCode returns the most recent order with the code.
	FindByCode(ctx context.Context, creatorUsername, code string) (*OrderView, error)
	FindFirstPage(ctx context.Context, creatorUsername string, status *string, limit int32) ([]*OrderListItem, error)
	FindKeyset(ctx context.Context, creatorUsername string, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OrderListItem, error)
}

type OrderQueries interface {
	GetByID(ctx context.Context, creatorUsername string, id uuid.UUID) (*OrderView, error)
	GetByCode(ctx context.Context, creatorUsername, code string) (*OrderView, error)
	List(ctx context.Context, creatorUsername string, filters OrderFilters, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, creatorUsername string, id uuid.UUID) (*OrderView, error) {
	v, err := q.store.FindByID(ctx, creatorUsername, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *orderQueriesImpl) GetByCode(ctx context.Context, creatorUsername, code string) (*OrderView, error) {
	c, err := order.ParseCode(code)
	if err != nil {
		return nil, err
	}
	v, err := q.store.FindByCode(ctx, creatorUsername, c.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *orderQueriesImpl) List(ctx context.Context, creatorUsername string, filters OrderFilters, cursor *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	if filters.Status != nil && !order.Status(*filters.Status).IsValid() {
		return nil, nil, ErrInvalidStatus
	}
	limit = ValidateLimit(limit)
	ks, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}

	var rows []*OrderListItem
	if ks == nil {
		rows, err = q.store.FindFirstPage(ctx, creatorUsername, filters.Status, int32(limit+1))
	} else {
		rows, err = q.store.FindKeyset(ctx, creatorUsername, filters.Status, ks.CreatedAt, ks.ID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	rows, next := page(rows, limit, func(r *OrderListItem) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return rows, next, nil
}
