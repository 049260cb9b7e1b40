package commands

import (
	"context"

	"creator-sponsorship/internal/infra"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/usecase/shared"

	"github.com/google/uuid"
)

type NotificationCommands interface {
	MarkRead(ctx context.Context, creatorUsername string, id uuid.UUID) error
}

type notificationUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewNotificationUseCase(uow shared.UnitOfWork) NotificationCommands {
	return &notificationUseCaseImpl{uow: uow}
}

// MarkRead is idempotent.
func (uc *notificationUseCaseImpl) MarkRead(ctx context.Context, creatorUsername string, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Reads().NotificationByID(ctx, creatorUsername, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrNotificationNotFound
			}
			return err
		}
		if !ev.MarkRead() {
			return nil
		}
		if err := tx.Notifications().UpdateRead(ctx, tx.DB(), ev); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
