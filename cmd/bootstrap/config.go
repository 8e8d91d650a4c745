package bootstrap

import (
	"go.uber.org/fx"

	"staybook/internal/pkg/config"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
