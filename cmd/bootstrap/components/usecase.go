package components

import (
	"creator-sponsorship/internal/domain/order"
	"creator-sponsorship/internal/domain/sponsorship"
	"creator-sponsorship/internal/pkg/clock"
	"creator-sponsorship/internal/pkg/config"
	"creator-sponsorship/internal/usecase/commands"
	"creator-sponsorship/internal/usecase/queries"
	"creator-sponsorship/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		sponsorship.NewDefaultPriceCalculator,
		fx.As(new(sponsorship.PriceCalculator)),
	),
	fx.Annotate(
		order.NewRandomCodeGenerator,
		fx.As(new(order.CodeGenerator)),
	),
	order.NewFactory,
	commands.NewReconciler,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			uow shared.UnitOfWork,
			factory *order.Factory,
			calc sponsorship.PriceCalculator,
			reconciler *commands.Reconciler,
			orderQueries queries.OrderQueries,
			clk clock.Clock,
			cfg config.Config,
		) commands.OrderCommands {
			return commands.NewOrderUseCase(uow, factory, calc, reconciler, orderQueries, clk, cfg.Wizard.IdempotencyTTL)
		},
		commands.NewWizardUseCase,
		commands.NewNotificationUseCase,
		commands.NewCreatorUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewOrderQueries,
		queries.NewLedgerQueries,
		queries.NewNotificationQueries,
		queries.NewCreatorQueries,
	),
)
