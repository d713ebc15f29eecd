package components

import (
	"log/slog"

	"pos-gateway/internal/infra/sessions"
	"pos-gateway/internal/infra/storeapi"
	"pos-gateway/internal/pkg/config"
	"pos-gateway/internal/usecase/commands"
	"pos-gateway/internal/usecase/queries"
	"pos-gateway/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewStoreClient,
			fx.As(new(queries.CatalogGateway)),
			fx.As(new(queries.PromotionGateway)),
			fx.As(new(commands.CheckoutGateway)),
			fx.As(new(commands.MemberDirectory)),
		),
		fx.Annotate(
			sessions.NewStore,
			fx.As(new(shared.RegisterStore)),
		),
	),
)

func NewStoreClient(cfg config.Config, logger *slog.Logger) *storeapi.Client {
	return storeapi.NewClient(cfg.StoreAPI, logger)
}
