package components

import (
	"context"

	"creator-sponsorship/internal/handler"
	"creator-sponsorship/internal/handler/api"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWizardHandler,
		api.NewCreatorHandler,
		NewHealthHandler,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHealthHandler(pool *pgxpool.Pool, client *redis.Client) *api.HealthHandler {
	return api.NewHealthHandler(
		api.HealthCheck{Name: "postgres", Probe: pool.Ping},
		api.HealthCheck{Name: "redis", Probe: func(ctx context.Context) error {
			return client.Ping(ctx).Err()
		}},
	)
}
