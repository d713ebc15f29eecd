package components

import (
	"pos-gateway/internal/pkg/clock"
	"pos-gateway/internal/pkg/config"
	"pos-gateway/internal/usecase/commands"
	"pos-gateway/internal/usecase/queries"
	"pos-gateway/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewRegisterCommands,
		commands.NewCheckoutUseCase,
		commands.NewMemberUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewRegisterQueries,
		queries.NewCatalogQueries,
	),
)

func NewRegisterCommands(
	cfg config.Config,
	store shared.RegisterStore,
	catalogGateway queries.CatalogGateway,
	members commands.MemberDirectory,
) commands.RegisterCommands {
	return commands.NewRegisterUseCase(store, catalogGateway, members, cfg.Lookup.SettleDelay)
}
