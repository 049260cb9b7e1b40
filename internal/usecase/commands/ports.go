package commands

import (
	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/domain/wizard"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCreatorNotFound      = errs.NotFound("creator not found")
	ErrOrderNotFound        = errs.NotFound("order not found")
	ErrNotificationNotFound = errs.NotFound("notification not found")
	ErrContentNotInResults  = errs.Validation("content is not among the current search results")
	ErrNotAtSummary         = errs.Conflict("order can only be submitted from the summary step")
	ErrLookupFailed         = errs.Mark(errs.New("catalog lookup failed"), errs.ErrUpstream)
	ErrOrderVersionConflict = errs.Conflict("order was modified concurrently")
	ErrLedgerConflict       = errs.Conflict("sponsorship ledger was modified concurrently")
)

// SubmitOrderInput is everything needed to turn a finished wizard draft into an order.
type SubmitOrderInput struct {
	SessionID       uuid.UUID
	CreatorUsername string
	PriceList       sponsorship.PriceList
	Draft           wizard.Draft
}

type SubmitOrderResult struct {
	Order      *queries.OrderView
	IsReplayed bool
}

// SessionView is a wizard session plus the live quote of its draft, if any.
type SessionView struct {
	Session *wizard.Session
	Quote   *sponsorship.Quote
}

type SubmitResult struct {
	View       *SessionView
	Order      *queries.OrderView
	IsReplayed bool
}

type UpdatePriceListInput struct {
	MoviePriceShortCents *int64
	MoviePriceLongCents  *int64
	EpisodePriceCents    *int64
	PriorityPriceCents   *int64
	Currency             *string
	ContactInstructions  *string
}

type UpdateStatusInput struct {
	Status order.Status
}
