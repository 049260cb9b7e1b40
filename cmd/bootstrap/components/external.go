package components

import (
	"context"
	"log/slog"

	"creator-sponsorship/internal/infra/catalog"
	"creator-sponsorship/internal/infra/db"
	"creator-sponsorship/internal/infra/janitor"
	"creator-sponsorship/internal/infra/messaging"
	"creator-sponsorship/internal/infra/readstore"
	"creator-sponsorship/internal/infra/repository"
	"creator-sponsorship/internal/infra/sessionstore"
	"creator-sponsorship/internal/pkg/clock"
	"creator-sponsorship/internal/pkg/config"
	"creator-sponsorship/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var ExternalModule = fx.Module("external",
	fx.Provide(
		NewCatalogLookup,
		NewSessionStore,
		NewPublisher,
	),
	fx.Invoke(StartDispatcher, StartIdempotencySweeper),
)

func NewCatalogLookup(cfg config.Config, client *redis.Client) (shared.CatalogLookup, error) {
	tmdb, err := catalog.New(
		cfg.Catalog.APIKey,
		cfg.Catalog.BaseURL,
		cfg.Catalog.Language,
		catalog.WithTimeout(cfg.Catalog.Timeout),
	)
	if err != nil {
		return nil, err
	}
	return catalog.NewCachedLookup(tmdb, client, cfg.Catalog.CacheTTL), nil
}

func NewSessionStore(cfg config.Config, client *redis.Client) shared.SessionStore {
	return sessionstore.NewRedisStore(client, cfg.Wizard.SessionTTL)
}

func NewPublisher(lc fx.Lifecycle, cfg config.Config) shared.Publisher {
	pub := messaging.NewAMQPPublisher(cfg.AMQP)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub
}

// StartDispatcher registers the outbox dispatcher after the publisher so it
// stops first.
func StartDispatcher(
	lc fx.Lifecycle,
	cfg config.Config,
	u shared.UnitOfWork,
	jobs *readstore.NotificationReadStore,
	publisher shared.Publisher,
	clk clock.Clock,
	pool db.DBTX,
	logger *slog.Logger,
) {
	d := messaging.NewDispatcher(
		u,
		jobs,
		repository.NewNotificationRepository(pool),
		publisher,
		clk,
		cfg.Outbox,
		logger.With("component", "outbox"),
	)
	lc.Append(fx.Hook{
		OnStart: d.Start,
		OnStop:  d.Stop,
	})
}

func StartIdempotencySweeper(lc fx.Lifecycle, cfg config.Config, pool db.DBTX, logger *slog.Logger) {
	s := janitor.NewSweeper(
		repository.NewIdempotencyRepository(pool),
		cfg.Wizard.IdempotencySweepInterval,
		logger.With("component", "idempotency-sweeper"),
	)
	lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Stop,
	})
}
