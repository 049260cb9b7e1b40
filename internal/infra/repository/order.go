package repository

import (
	"context"
	"encoding/json"

	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/infra/converter"
	"creator-sponsorship/internal/infra/db"
	"creator-sponsorship/internal/pkg/pgconv"
	"creator-sponsorship/internal/pkg/ptr"

	"github.com/google/uuid"
)

const (
	insertOrderSQL = `
INSERT INTO orders (
	id, code, creator_username, items, buyer_name, contact_platform, contact_value, email, message,
	subtotal_cents, priority_total_cents, total_cents, currency, status, created_at, paid_at, updated_at, version
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $15, $17)`

	selectOrderForUpdateSQL = `SELECT ` + converter.OrderColumns + `
FROM orders
WHERE id = $1 AND creator_username = $2
FOR UPDATE`

	updateOrderStatusSQL = `
UPDATE orders
SET status = $3, paid_at = $4, updated_at = now(), version = version + 1
WHERE id = $1 AND version = $2`
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(db db.DBTX) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, tx db.DBTX, o *order.Order) error {
	items, err := json.Marshal(o.Items())
	if err != nil {
		return infra.WrapRepoErr("failed to encode order items", err, infra.KindConstraintViolated)
	}
	buyer := o.Buyer()

	_, err = tx.Exec(ctx, insertOrderSQL,
		o.ID(),
		o.Code().String(),
		o.CreatorUsername(),
		items,
		buyer.Name(),
		string(buyer.ContactPlatform()),
		buyer.ContactValue(),
		pgconv.StringPtrToPgtype(ptr.NonEmpty(buyer.Email())),
		o.Message(),
		o.Subtotal().Cents(),
		o.PriorityTotal().Cents(),
		o.Total().Cents(),
		o.Currency(),
		string(o.Status()),
		o.CreatedAt(),
		pgconv.TimePtrToPgtype(o.PaidAt()),
		o.Version(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, tx db.DBTX, creatorUsername string, id uuid.UUID) (*order.Order, error) {
	o, err := converter.ScanOrder(tx.QueryRow(ctx, selectOrderForUpdateSQL, id, creatorUsername))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock order", err)
	}
	return o, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx db.DBTX, o *order.Order, expectedVersion int64) error {
	tag, err := tx.Exec(ctx, updateOrderStatusSQL, o.ID(), expectedVersion, string(o.Status()), pgconv.TimePtrToPgtype(o.PaidAt()))
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order version mismatch", nil, infra.KindConflict)
	}
	return nil
}
