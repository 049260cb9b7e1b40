package notification

import (
	"fmt"
	"strings"
	"time"

	"creator-sponsorship/internal/pkg/errs"

	"github.com/google/uuid"
)

type Type string

const (
	TypeNewOrder Type = "new_order"
)

var (
	ErrEmptyCreator   = errs.Validation("notification creator is required")
	ErrEmptyOrderCode = errs.Validation("notification order code is required")
)

// Event is one entry of a creator's inbox.
type Event struct {
	id              uuid.UUID
	creatorUsername string
	eventType       Type
	orderCode       string
	message         string
	buyerName       string
	createdAt       time.Time
	read            bool
}

// NewOrderEvent announces a freshly placed order. It is raised at submission,
// not when the order is paid.
func NewOrderEvent(creatorUsername, orderCode, buyerName string, now time.Time) (*Event, error) {
	creatorUsername = strings.TrimSpace(creatorUsername)
	if creatorUsername == "" {
		return nil, ErrEmptyCreator
	}
	if orderCode == "" {
		return nil, ErrEmptyOrderCode
	}
	return &Event{
		id:              uuid.New(),
		creatorUsername: creatorUsername,
		eventType:       TypeNewOrder,
		orderCode:       orderCode,
		message:         fmt.Sprintf("New order %s from %s", orderCode, buyerName),
		buyerName:       buyerName,
		createdAt:       now,
	}, nil
}

func ReconstructEvent(id uuid.UUID, creatorUsername string, eventType Type, orderCode, message, buyerName string, createdAt time.Time, read bool) *Event {
	return &Event{
		id:              id,
		creatorUsername: creatorUsername,
		eventType:       eventType,
		orderCode:       orderCode,
		message:         message,
		buyerName:       buyerName,
		createdAt:       createdAt,
		read:            read,
	}
}

func (e *Event) ID() uuid.UUID           { return e.id }
func (e *Event) CreatorUsername() string { return e.creatorUsername }
func (e *Event) Type() Type              { return e.eventType }
func (e *Event) OrderCode() string       { return e.orderCode }
func (e *Event) Message() string         { return e.message }
func (e *Event) BuyerName() string       { return e.buyerName }
func (e *Event) CreatedAt() time.Time    { return e.createdAt }
func (e *Event) Read() bool              { return e.read }

// MarkRead reports whether the flag changed.
func (e *Event) MarkRead() bool {
	if e.read {
		return false
	}
	e.read = true
	return true
}
