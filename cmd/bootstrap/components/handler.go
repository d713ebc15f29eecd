package components

import (
	"pos-gateway/internal/handler"
	"pos-gateway/internal/handler/api"
	"pos-gateway/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPosHandler,
		api.NewCatalogHandler,
		api.NewMemberHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
