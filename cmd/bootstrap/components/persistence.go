package components

import (
	"creator-sponsorship/internal/infra/db"
	"creator-sponsorship/internal/infra/readstore"
	"creator-sponsorship/internal/infra/uow"
	"creator-sponsorship/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderReadStore)),
		),
		fx.Annotate(
			readstore.NewLedgerReadStore,
			fx.As(new(queries.LedgerReadStore)),
		),
		// Notification store doubles as the outbox job source.
		readstore.NewNotificationReadStore,
		func(s *readstore.NotificationReadStore) queries.NotificationReadStore { return s },
		fx.Annotate(
			readstore.NewCreatorReadStore,
			fx.As(new(queries.CreatorReadStore)),
		),
	),
)

// Transactional repositories are built per transaction inside the UoW.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
