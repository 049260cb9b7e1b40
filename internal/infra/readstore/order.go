package readstore

import (
	"context"
	"time"

	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/infra/converter"
	"creator-sponsorship/internal/infra/db"
	"creator-sponsorship/internal/pkg/pgconv"
	"creator-sponsorship/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	selectOrderByIDSQL = `SELECT ` + converter.OrderColumns + `
FROM orders
WHERE id = $1 AND creator_username = $2`

	selectOrderByCodeSQL = `SELECT ` + converter.OrderColumns + `
FROM orders
WHERE creator_username = $1 AND code = $2
ORDER BY created_at DESC, id DESC
LIMIT 1`

	selectOrdersFirstPageSQL = `SELECT ` + converter.OrderColumns + `
FROM orders
WHERE creator_username = $1 AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC, id DESC
LIMIT $3`

	selectOrdersKeysetSQL = `SELECT ` + converter.OrderColumns + `
FROM orders
WHERE creator_username = $1 AND ($2::text IS NULL OR status = $2)
	AND (created_at, id) < ($3, $4)
ORDER BY created_at DESC, id DESC
LIMIT $5`
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(db db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: db}
}

func (r *OrderReadStore) FindByID(ctx context.Context, creatorUsername string, id uuid.UUID) (*queries.OrderView, error) {
	o, err := r.FindDomainByID(ctx, r.db, creatorUsername, id)
	if err != nil {
		return nil, err
	}
	return converter.OrderToView(o), nil
}

// FindDomainByID serves command-side reads inside a transaction.
func (r *OrderReadStore) FindDomainByID(ctx context.Context, tx db.DBTX, creatorUsername string, id uuid.UUID) (*order.Order, error) {
	o, err := converter.ScanOrder(tx.QueryRow(ctx, selectOrderByIDSQL, id, creatorUsername))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	return o, nil
}

func (r *OrderReadStore) FindByCode(ctx context.Context, creatorUsername, code string) (*queries.OrderView, error) {
	o, err := converter.ScanOrder(r.db.QueryRow(ctx, selectOrderByCodeSQL, creatorUsername, code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by code", err)
	}
	return converter.OrderToView(o), nil
}

func (r *OrderReadStore) FindFirstPage(ctx context.Context, creatorUsername string, status *string, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, selectOrdersFirstPageSQL, creatorUsername, pgconv.StringPtrToPgtype(status), limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	return collectListItems(rows)
}

func (r *OrderReadStore) FindKeyset(ctx context.Context, creatorUsername string, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, selectOrdersKeysetSQL, creatorUsername, pgconv.StringPtrToPgtype(status), lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders with keyset", err)
	}
	return collectListItems(rows)
}

func collectListItems(rows pgx.Rows) ([]*queries.OrderListItem, error) {
	defer rows.Close()
	result := make([]*queries.OrderListItem, 0)
	for rows.Next() {
		o, err := converter.ScanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		result = append(result, converter.OrderToListItem(o))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate orders", err)
	}
	return result, nil
}
