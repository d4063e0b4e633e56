package bootstrap

import (
	"github.com/tayooshoboke6/mmartplus-backend-private-sub000/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)
