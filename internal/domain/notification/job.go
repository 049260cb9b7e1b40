package notification

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Outbox job kinds.
const (
	JobKindNewOrder  = "new_order"
	JobKindOrderPaid = "order_paid"
)

// NewOrderPayload is published to the broker when an order is placed.
type NewOrderPayload struct {
	EventID         uuid.UUID `json:"eventId"`
	OrderID         uuid.UUID `json:"orderId"`
	OrderCode       string    `json:"orderCode"`
	CreatorUsername string    `json:"creatorUsername"`
	BuyerName       string    `json:"buyerName"`
	TotalCents      int64     `json:"totalCents"`
	CreatedAt       time.Time `json:"createdAt"`
}

// OrderPaidPayload is published once the ledger merge for a paid order has committed.
type OrderPaidPayload struct {
	OrderID         uuid.UUID `json:"orderId"`
	OrderCode       string    `json:"orderCode"`
	CreatorUsername string    `json:"creatorUsername"`
	ContentIDs      []int64   `json:"contentIds"`
	PaidAt          time.Time `json:"paidAt"`
}

func NewOrderPayloadFor(e *Event, orderID uuid.UUID, totalCents int64) ([]byte, error) {
	return json.Marshal(NewOrderPayload{
		EventID:         e.ID(),
		OrderID:         orderID,
		OrderCode:       e.OrderCode(),
		CreatorUsername: e.CreatorUsername(),
		BuyerName:       e.BuyerName(),
		TotalCents:      totalCents,
		CreatedAt:       e.CreatedAt(),
	})
}

// Topic routes a job for a creator, e.g. "creator.alice.new_order".
func Topic(creatorUsername, kind string) string {
	return "creator." + creatorUsername + "." + kind
}
