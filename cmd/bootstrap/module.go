package bootstrap

import (
	"pos-gateway/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	JWTModule,
	components.GatewayModule,
	components.UseCaseModule,
	components.HandlerModule,
)
