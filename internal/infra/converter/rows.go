package converter

import (
	"encoding/json"
	"time"

	"creator-sponsorship/internal/domain/notification"
	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/pkg/pgconv"
	"creator-sponsorship/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// OrderColumns matches the scan order of ScanOrder.
const OrderColumns = `id, code, creator_username, items, buyer_name, contact_platform, contact_value, email,
	message, subtotal_cents, priority_total_cents, total_cents, currency, status, created_at, paid_at, version`

func ScanOrder(row pgx.Row) (*order.Order, error) {
	var (
		id                             uuid.UUID
		code, creator                  string
		items                          []byte
		buyerName, platform, contact   string
		email                          pgtype.Text
		message, currency, status      string
		subtotal, priorityTotal, total int64
		createdAt                      time.Time
		paidAt                         pgtype.Timestamptz
		version                        int64
	)
	if err := row.Scan(&id, &code, &creator, &items, &buyerName, &platform, &contact, &email,
		&message, &subtotal, &priorityTotal, &total, &currency, &status, &createdAt, &paidAt, &version); err != nil {
		return nil, err
	}

	var lineItems []order.LineItem
	if err := json.Unmarshal(items, &lineItems); err != nil {
		return nil, err
	}

	return order.ReconstructOrder(
		id,
		order.Code(code),
		creator,
		lineItems,
		order.ReconstructBuyerInfo(buyerName, order.ContactPlatform(platform), contact, email.String),
		message,
		sponsorship.NewMoney(subtotal),
		sponsorship.NewMoney(priorityTotal),
		sponsorship.NewMoney(total),
		currency,
		order.Status(status),
		createdAt.UTC(),
		pgconv.TimePtrFromPgtype(paidAt),
		version,
	), nil
}

// LedgerColumns matches the scan order of ScanLedgerEntry.
const LedgerColumns = `creator_username, content_id, media_type, title, poster_ref, runtime_minutes,
	is_paid, is_priority, priority, sponsor_name, episodes, version, updated_at`

func ScanLedgerEntry(row pgx.Row) (*sponsorship.LedgerEntry, error) {
	var (
		creator               string
		content               sponsorship.ContentRef
		mediaType             string
		runtime               pgtype.Int4
		isPaid, isPriority    bool
		priority, sponsorName string
		episodes              []byte
		version               int64
		updatedAt             time.Time
	)
	if err := row.Scan(&creator, &content.ID, &mediaType, &content.Title, &content.PosterRef, &runtime,
		&isPaid, &isPriority, &priority, &sponsorName, &episodes, &version, &updatedAt); err != nil {
		return nil, err
	}
	content.MediaType = sponsorship.MediaType(mediaType)
	content.RuntimeMinutes = pgconv.IntPtrFromPgtype(runtime)

	var records []sponsorship.EpisodeRecord
	if err := json.Unmarshal(episodes, &records); err != nil {
		return nil, err
	}

	return sponsorship.ReconstructLedgerEntry(creator, content, isPaid, isPriority,
		sponsorship.Priority(priority), sponsorName, records, version, updatedAt.UTC()), nil
}

// EventColumns matches the scan order of ScanEvent.
const EventColumns = `id, creator_username, type, order_code, message, buyer_name, created_at, read`

func ScanEvent(row pgx.Row) (*notification.Event, error) {
	var (
		id                                   uuid.UUID
		creator, eventType, code, msg, buyer string
		createdAt                            time.Time
		read                                 bool
	)
	if err := row.Scan(&id, &creator, &eventType, &code, &msg, &buyer, &createdAt, &read); err != nil {
		return nil, err
	}
	return notification.ReconstructEvent(id, creator, notification.Type(eventType), code, msg, buyer, createdAt.UTC(), read), nil
}

func EventToView(e *notification.Event) *queries.NotificationView {
	return &queries.NotificationView{
		ID:        e.ID(),
		Type:      string(e.Type()),
		OrderCode: e.OrderCode(),
		Message:   e.Message(),
		BuyerName: e.BuyerName(),
		CreatedAt: e.CreatedAt(),
		Read:      e.Read(),
	}
}
