package fx

import (
	"Rateio/config"
	"Rateio/internal/middleware"

	"go.uber.org/fx"
)

var MiddlewareModule = fx.Module("middleware",
	fx.Provide(
		newJwtService,
	),
)

func newJwtService(cfg *config.Config) (*middleware.JwtService, error) {
	return middleware.NewJwtService(cfg.JWT)
}
