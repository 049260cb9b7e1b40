// Package janitor removes expired idempotency keys.
package janitor

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

type ExpiredKeyStore interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

type Sweeper struct {
	store    ExpiredKeyStore
	interval time.Duration
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSweeper(store ExpiredKeyStore, interval time.Duration, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{store: store, interval: interval, logger: logger}
}

// SweepOnce reports how many keys were removed.
func (s *Sweeper) SweepOnce(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.InfoContext(ctx, "expired idempotency keys removed", "count", n)
	}
	return n, nil
}

func (s *Sweeper) Start(_ context.Context) error {
	if s.interval <= 0 {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.SweepOnce(ctx); err != nil && ctx.Err() == nil {
					s.logger.ErrorContext(ctx, "idempotency sweep failed", "error", err)
				}
			}
		}
	}()
	return nil
}

func (s *Sweeper) Stop(_ context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	s.wg.Wait()
	return nil
}
