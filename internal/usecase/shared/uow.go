package shared

import (
	"context"
	"time"

	"creator-sponsorship/internal/domain/notification"
	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Ledger() LedgerRepository
	Notifications() NotificationRepository
	Idempotency() IdempotencyRepository
	Creators() CreatorRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	// LedgerEntry returns nil without error when the content has never been sponsored.
	LedgerEntry(ctx context.Context, creatorUsername string, contentID int64) (*sponsorship.LedgerEntry, error)
	OrderByID(ctx context.Context, creatorUsername string, id uuid.UUID) (*order.Order, error)
	CreatorProfile(ctx context.Context, creatorUsername string) (*CreatorProfileSnapshot, error)
	NotificationByID(ctx context.Context, creatorUsername string, id uuid.UUID) (*notification.Event, error)
	IdempotencyByKey(ctx context.Context, key uuid.UUID, scope string) (*IdempotencyRecord, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx db.DBTX, o *order.Order) error
	// FindForUpdate locks the order row until the transaction ends.
	FindForUpdate(ctx context.Context, tx db.DBTX, creatorUsername string, id uuid.UUID) (*order.Order, error)
	// UpdateStatus fails with a conflict when the stored version is no longer expectedVersion.
	UpdateStatus(ctx context.Context, tx db.DBTX, o *order.Order, expectedVersion int64) error
}

type LedgerRepository interface {
	// FindForUpdate returns nil without error for content that has no entry yet.
	FindForUpdate(ctx context.Context, tx db.DBTX, creatorUsername string, contentID int64) (*sponsorship.LedgerEntry, error)
	Save(ctx context.Context, tx db.DBTX, entry *sponsorship.LedgerEntry) error
}

type NotificationRepository interface {
	CreateEvent(ctx context.Context, tx db.DBTX, ev *notification.Event) error
	UpdateRead(ctx context.Context, tx db.DBTX, ev *notification.Event) error
	CreateJob(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists.
	TryInsert(ctx context.Context, tx db.DBTX, key uuid.UUID, scope, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key uuid.UUID, scope, resultHash string, orderID uuid.UUID) error
}

type CreatorRepository interface {
	UpsertProfile(ctx context.Context, tx db.DBTX, profile CreatorProfileSnapshot) error
}
