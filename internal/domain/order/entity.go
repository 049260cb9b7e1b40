package order

import (
	"strings"
	"time"

	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatusTransition = errs.Conflict("invalid order status transition")
	ErrInvalidStatus           = errs.Validation("invalid order status")
	ErrNoLineItems             = errs.Validation("order must contain at least one line item")
	ErrMixedContent            = errs.Validation("line items must reference content of the declared media type")
	ErrEmptyCreator            = errs.Validation("creator username is required")
	ErrBuyerNameRequired       = errs.Validation("buyer name is required")
	ErrBuyerNameTooLong        = errs.Validation("buyer name is too long")
	ErrContactValueRequired    = errs.Validation("contact value is required")
	ErrContactValueTooLong     = errs.Validation("contact value is too long")
	ErrInvalidContactPlatform  = errs.Validation("invalid contact platform")
	ErrInvalidEmail            = errs.Validation("invalid email address")
	ErrMessageTooLong          = errs.Validation("message is too long")
	ErrInvalidOrderCode        = errs.Validation("order code must be 8 characters from A-Z and 0-9")
)

// Order is the immutable record of a purchase. Only status and paidAt change
// after creation.
type Order struct {
	id              uuid.UUID
	code            Code
	creatorUsername string
	items           []LineItem
	buyer           BuyerInfo
	message         string
	subtotal        sponsorship.Money
	priorityTotal   sponsorship.Money
	total           sponsorship.Money
	currency        string
	status          Status
	createdAt       time.Time
	paidAt          *time.Time
	version         int64
}

func newOrder(id uuid.UUID, code Code, creatorUsername string, items []LineItem, buyer BuyerInfo, message, currency string, now time.Time) (*Order, error) {
	creatorUsername = strings.TrimSpace(creatorUsername)
	if creatorUsername == "" {
		return nil, ErrEmptyCreator
	}
	if len(items) == 0 {
		return nil, ErrNoLineItems
	}
	if _, err := ParseCode(string(code)); err != nil {
		return nil, err
	}
	msg, err := NormalizeMessage(message)
	if err != nil {
		return nil, err
	}

	var subtotal, priorityTotal sponsorship.Money
	for _, it := range items {
		if it.Content.IsMovie() != (it.Episode == nil) {
			return nil, ErrMixedContent
		}
		subtotal = subtotal.Add(it.UnitPrice)
		priorityTotal = priorityTotal.Add(it.PriorityPrice)
	}

	if id == uuid.Nil {
		id = uuid.New()
	}
	copied := make([]LineItem, len(items))
	copy(copied, items)

	return &Order{
		id:              id,
		code:            code,
		creatorUsername: creatorUsername,
		items:           copied,
		buyer:           buyer,
		message:         msg,
		subtotal:        subtotal,
		priorityTotal:   priorityTotal,
		total:           subtotal.Add(priorityTotal),
		currency:        currency,
		status:          StatusPending,
		createdAt:       now,
		version:         1,
	}, nil
}

// ReconstructOrder rebuilds an order from storage without validation.
func ReconstructOrder(
	id uuid.UUID,
	code Code,
	creatorUsername string,
	items []LineItem,
	buyer BuyerInfo,
	message string,
	subtotal, priorityTotal, total sponsorship.Money,
	currency string,
	status Status,
	createdAt time.Time,
	paidAt *time.Time,
	version int64,
) *Order {
	return &Order{
		id:              id,
		code:            code,
		creatorUsername: creatorUsername,
		items:           items,
		buyer:           buyer,
		message:         message,
		subtotal:        subtotal,
		priorityTotal:   priorityTotal,
		total:           total,
		currency:        currency,
		status:          status,
		createdAt:       createdAt,
		paidAt:          paidAt,
		version:         version,
	}
}

func (o *Order) ID() uuid.UUID                    { return o.id }
func (o *Order) Code() Code                       { return o.code }
func (o *Order) CreatorUsername() string          { return o.creatorUsername }
func (o *Order) Buyer() BuyerInfo                 { return o.buyer }
func (o *Order) Message() string                  { return o.message }
func (o *Order) Subtotal() sponsorship.Money      { return o.subtotal }
func (o *Order) PriorityTotal() sponsorship.Money { return o.priorityTotal }
func (o *Order) Total() sponsorship.Money         { return o.total }
func (o *Order) Currency() string                 { return o.currency }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }
func (o *Order) PaidAt() *time.Time               { return o.paidAt }
func (o *Order) Version() int64                   { return o.version }

func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// TransitionTo applies one lifecycle edge. Reaching paid stamps paidAt.
func (o *Order) TransitionTo(next Status, now time.Time) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !o.status.CanTransitionTo(next) {
		return ErrInvalidStatusTransition
	}
	if next == StatusPaid {
		t := now
		o.paidAt = &t
	}
	o.status = next
	return nil
}

func (o *Order) MarkPaid(now time.Time) error {
	return o.TransitionTo(StatusPaid, now)
}

func (o *Order) Complete(now time.Time) error {
	return o.TransitionTo(StatusCompleted, now)
}

func (o *Order) Cancel(now time.Time) error {
	return o.TransitionTo(StatusCancelled, now)
}

// LedgerLines converts the purchased units into ledger merge input.
func (o *Order) LedgerLines() []sponsorship.MergeLine {
	lines := make([]sponsorship.MergeLine, 0, len(o.items))
	for _, it := range o.items {
		lines = append(lines, sponsorship.MergeLine{
			Content:       it.Content,
			Episode:       it.Episode,
			WantsPriority: it.WantsPriority,
		})
	}
	return lines
}
