package bootstrap

import (
	"hostelops/internal/pkg/config"
	"hostelops/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	accessTokenDuration, refreshTokenDuration := cfg.JWT.Durations()
	return jwt.NewService(cfg.JWT.Secret, accessTokenDuration, refreshTokenDuration)
}
