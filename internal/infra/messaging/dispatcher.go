package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"creator-sponsorship/internal/infra/db"
	"creator-sponsorship/internal/infra/repository"
	"creator-sponsorship/internal/pkg/clock"
	"creator-sponsorship/internal/pkg/config"
	"creator-sponsorship/internal/pkg/errs"
	"creator-sponsorship/internal/usecase/queries"
	"creator-sponsorship/internal/usecase/shared"

	"github.com/google/uuid"
)

const maxRetryDelay = 5 * time.Minute

type JobSource interface {
	// GetPendingJobs locks due jobs until tx ends.
	GetPendingJobs(ctx context.Context, tx db.DBTX, limit int32) ([]*queries.NotificationJobView, error)
}

type JobStore interface {
	UpdateJobStatus(ctx context.Context, tx db.DBTX, jobID uuid.UUID, status string, lastError *string, runAt time.Time) error
}

// Dispatcher drains the notification_jobs outbox. Delivery is at least
// once: a job whose status update fails after publishing is sent again.
type Dispatcher struct {
	uow       shared.UnitOfWork
	jobs      JobSource
	store     JobStore
	publisher shared.Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig
	logger    *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher(
	uow shared.UnitOfWork,
	jobs JobSource,
	store JobStore,
	publisher shared.Publisher,
	clk clock.Clock,
	cfg config.OutboxConfig,
	logger *slog.Logger,
) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		uow:       uow,
		jobs:      jobs,
		store:     store,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

// DispatchOnce publishes one batch and reports how many jobs were delivered.
func (d *Dispatcher) DispatchOnce(ctx context.Context) (int, error) {
	delivered := 0
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		delivered = 0
		pending, err := d.jobs.GetPendingJobs(ctx, tx.DB(), int32(d.cfg.BatchSize))
		if err != nil {
			return err
		}
		for _, job := range pending {
			now := d.clock.Now()
			pubErr := d.publisher.Publish(ctx, job.Kind, job.Topic, job.Payload, now)
			if pubErr == nil {
				if err := d.store.UpdateJobStatus(ctx, tx.DB(), job.ID, repository.JobStatusDone, nil, now); err != nil {
					return err
				}
				delivered++
				continue
			}

			msg := pubErr.Error()
			attempts := int(job.Attempts) + 1
			status, runAt := repository.JobStatusQueued, now.Add(retryDelay(attempts))
			if attempts >= d.cfg.MaxAttempts {
				status, runAt = repository.JobStatusFailed, now
			}
			d.logger.WarnContext(ctx, "notification publish failed",
				"job_id", job.ID, "topic", job.Topic, "attempts", attempts, "status", status, "error", pubErr)
			if err := d.store.UpdateJobStatus(ctx, tx.DB(), job.ID, status, &msg, runAt); err != nil {
				return err
			}
		}
		return nil
	})
	return delivered, err
}

func (d *Dispatcher) Start(_ context.Context) error {
	if !d.cfg.Enabled {
		d.logger.Info("outbox dispatcher disabled")
		return nil
	}
	if d.cfg.PollInterval <= 0 || d.cfg.BatchSize <= 0 {
		return errs.Newf("outbox dispatcher: poll interval %s and batch size %d must be positive", d.cfg.PollInterval, d.cfg.BatchSize)
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.wg.Add(1)
	go d.run(ctx)
	d.logger.Info("outbox dispatcher started", "interval", d.cfg.PollInterval, "batch", d.cfg.BatchSize)
	return nil
}

func (d *Dispatcher) Stop(_ context.Context) error {
	if d.cancel == nil {
		return nil
	}
	d.cancel()
	d.wg.Wait()
	d.logger.Info("outbox dispatcher stopped")
	return nil
}

func (d *Dispatcher) run(ctx context.Context) {
	defer d.wg.Done()
	ticker := time.NewTicker(d.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// keep draining while full batches come back
			for {
				n, err := d.DispatchOnce(ctx)
				if err != nil {
					if ctx.Err() == nil {
						d.logger.ErrorContext(ctx, "outbox dispatch failed", "error", err)
					}
					break
				}
				if n < d.cfg.BatchSize {
					break
				}
			}
		}
	}
}

// retryDelay doubles from one second, capped at maxRetryDelay.
func retryDelay(attempts int) time.Duration {
	if attempts > 20 {
		return maxRetryDelay
	}
	delay := time.Second << (attempts - 1)
	if delay > maxRetryDelay {
		return maxRetryDelay
	}
	return delay
}
