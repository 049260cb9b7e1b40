package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"creator-sponsorship/internal/domain/notification"
	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/pkg/clock"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/usecase/shared"
)

// Reconciler is the only writer of the sponsorship ledger. It folds a paid
// order into the ledger of the order's creator.
type Reconciler struct {
	clock clock.Clock
}

func NewReconciler(clk clock.Clock) *Reconciler {
	return &Reconciler{clock: clk}
}

// Reconcile must run inside the transaction that marks the order paid.
func (r *Reconciler) Reconcile(ctx context.Context, tx shared.Tx, o *order.Order) error {
	now := r.clock.Now()
	creator := o.CreatorUsername()
	groups := sponsorship.GroupByContent(o.LedgerLines())
	contentIDs := make([]int64, 0, len(groups))

	for _, g := range groups {
		contentIDs = append(contentIDs, g.Content.ID)

		entry, err := tx.Ledger().FindForUpdate(ctx, tx.DB(), creator, g.Content.ID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if entry == nil {
			entry, err = sponsorship.NewLedgerEntry(creator, g.Content, now)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}

		changed, err := entry.Merge(g.Lines, o.Buyer().Name(), now)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if !changed {
			continue
		}
		if err := tx.Ledger().Save(ctx, tx.DB(), entry); err != nil {
			// the retry re-reads the row under lock and merges again
			if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(ErrLedgerConflict, shared.ErrTxRetryable)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	payload, err := json.Marshal(notification.OrderPaidPayload{
		OrderID:         o.ID(),
		OrderCode:       o.Code().String(),
		CreatorUsername: creator,
		ContentIDs:      contentIDs,
		PaidAt:          now,
	})
	if err != nil {
		return err
	}
	topic := notification.Topic(creator, notification.JobKindOrderPaid)
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), notification.JobKindOrderPaid, topic, payload, now); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	slog.Info("ledger reconciled", "creator", creator, "order_code", o.Code().String(), "contents", len(contentIDs))
	return nil
}
