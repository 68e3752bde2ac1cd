package bootstrap

import (
	"stay-pricing/internal/pkg/config"
	"stay-pricing/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		func(cfg config.Config) *jwt.Service {
			return jwt.NewService(cfg.JWT)
		},
	),
)
