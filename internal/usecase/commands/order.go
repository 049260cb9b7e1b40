package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"creator-sponsorship/internal/domain/notification"
	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/domain/wizard"
	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/pkg/clock"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/usecase/queries"
	"creator-sponsorship/internal/usecase/shared"

	"github.com/google/uuid"
)

const submitEndpoint = "POST /api/wizard/:id/submit"

type OrderCommands interface {
	// Submit persists the order, its notification and outbox job in one transaction.
	// Submitting the same session again returns the first order.
	Submit(ctx context.Context, in SubmitOrderInput) (*SubmitOrderResult, error)
	UpdateStatus(ctx context.Context, creatorUsername string, orderID uuid.UUID, in UpdateStatusInput) (*queries.OrderView, error)
}

type orderUseCaseImpl struct {
	uow            shared.UnitOfWork
	factory        *order.Factory
	calc           sponsorship.PriceCalculator
	reconciler     *Reconciler
	orderQueries   queries.OrderQueries
	clock          clock.Clock
	idempotencyTTL time.Duration
}

func NewOrderUseCase(
	uow shared.UnitOfWork,
	factory *order.Factory,
	calc sponsorship.PriceCalculator,
	reconciler *Reconciler,
	orderQueries queries.OrderQueries,
	clk clock.Clock,
	idempotencyTTL time.Duration,
) OrderCommands {
	return &orderUseCaseImpl{
		uow:            uow,
		factory:        factory,
		calc:           calc,
		reconciler:     reconciler,
		orderQueries:   orderQueries,
		clock:          clk,
		idempotencyTTL: idempotencyTTL,
	}
}

func (uc *orderUseCaseImpl) Submit(ctx context.Context, in SubmitOrderInput) (*SubmitOrderResult, error) {
	requestHash := calculateDraftHash(in.Draft)
	now := uc.clock.Now()

	var (
		orderID  uuid.UUID
		replayed bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), in.SessionID, in.CreatorUsername, submitEndpoint, requestHash, now.Add(uc.idempotencyTTL))
		if err != nil {
			return errs.Mark(err, errs.ErrIdempotencyCheckFailed)
		}
		if !inserted {
			id, rerr := existingOrderID(ctx, tx, in.SessionID, in.CreatorUsername)
			if rerr != nil {
				return rerr
			}
			orderID, replayed = id, true
			return nil
		}

		o, err := uc.placeOrder(ctx, tx, in, now)
		if err != nil {
			return err
		}
		orderID = o.ID()
		return tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), in.SessionID, in.CreatorUsername, calculateIDHash(o.ID()), o.ID())
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write
	view, err := uc.orderQueries.GetByID(ctx, in.CreatorUsername, orderID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &SubmitOrderResult{Order: view, IsReplayed: replayed}, nil
}

func existingOrderID(ctx context.Context, tx shared.Tx, key uuid.UUID, scope string) (uuid.UUID, error) {
	rec, err := tx.Reads().IdempotencyByKey(ctx, key, scope)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if rec.Status == shared.IdempotencyStatusCompleted && rec.ResultOrderID != nil {
		return *rec.ResultOrderID, nil
	}
	return uuid.Nil, errs.ErrIdempotencyInProgress
}

// placeOrder re-reads the ledger so a unit sponsored since it was selected is
// priced and checked against the current state.
func (uc *orderUseCaseImpl) placeOrder(ctx context.Context, tx shared.Tx, in SubmitOrderInput, now time.Time) (*order.Order, error) {
	entry, err := tx.Reads().LedgerEntry(ctx, in.CreatorUsername, in.Draft.Content.ID)
	if err != nil {
		return nil, err
	}
	draft := in.Draft.WithLedger(entry.Snapshot())
	if draft.Blocked() {
		return nil, wizard.ErrUnitBlocked
	}

	quote := wizard.QuoteDraft(uc.calc, in.PriceList, draft)
	buyer, err := order.NewBuyerInfo(draft.Buyer.Name, draft.Buyer.ContactPlatform, draft.Buyer.ContactValue, draft.Buyer.Email)
	if err != nil {
		return nil, err
	}
	o, err := uc.factory.CreateOrder(in.CreatorUsername, wizard.LineItems(draft, quote), buyer, draft.Message, in.PriceList.Currency)
	if err != nil {
		return nil, err
	}
	if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	ev, err := notification.NewOrderEvent(in.CreatorUsername, o.Code().String(), buyer.Name(), now)
	if err != nil {
		return nil, err
	}
	if err := tx.Notifications().CreateEvent(ctx, tx.DB(), ev); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	payload, err := notification.NewOrderPayloadFor(ev, o.ID(), o.Total().Cents())
	if err != nil {
		return nil, err
	}
	topic := notification.Topic(in.CreatorUsername, notification.JobKindNewOrder)
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), notification.JobKindNewOrder, topic, payload, now); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("order placed",
		"creator", in.CreatorUsername,
		"order_code", o.Code().String(),
		"items", len(o.Items()),
		"total_cents", o.Total().Cents())
	return o, nil
}

func (uc *orderUseCaseImpl) UpdateStatus(ctx context.Context, creatorUsername string, orderID uuid.UUID, in UpdateStatusInput) (*queries.OrderView, error) {
	if !in.Status.IsValid() {
		return nil, order.ErrInvalidStatus
	}

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Orders().FindForUpdate(ctx, tx.DB(), creatorUsername, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		expected := o.Version()
		now := uc.clock.Now()
		if err := o.TransitionTo(in.Status, now); err != nil {
			return err
		}
		// cancellation and completion never touch the ledger
		if in.Status == order.StatusPaid {
			if err := uc.reconciler.Reconcile(ctx, tx, o); err != nil {
				return err
			}
		}

		if err := tx.Orders().UpdateStatus(ctx, tx.DB(), o, expected); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrOrderVersionConflict
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.orderQueries.GetByID(ctx, creatorUsername, orderID)
}

func calculateDraftHash(d wizard.Draft) string {
	data, _ := json.Marshal(struct {
		Content  int64
		Selected []wizard.Selection
		Priority bool
		Buyer    wizard.BuyerForm
		Message  string
	}{d.Content.ID, d.Selected, d.MoviePriority, d.Buyer, d.Message})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func calculateIDHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
