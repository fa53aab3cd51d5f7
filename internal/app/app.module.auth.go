package app

import (
	"github.com/joshuarp/gnoss-api-wrapper/internal/handlers"
	"github.com/joshuarp/gnoss-api-wrapper/internal/repository"
	"github.com/joshuarp/gnoss-api-wrapper/internal/services"
	"go.uber.org/fx"
)

// AuthModule serves operator login. Every binary that exposes protected
// routes needs it.
func AuthModule() fx.Option {
	return fx.Module("auth",
		fx.Provide(
			fx.Annotate(
				repository.NewOperatorAccountRepository,
				fx.ParamTags(`name:"db_gateway"`),
				fx.As(new(services.OperatorAccountRepository)),
			),
			fx.Annotate(
				services.NewOperatorLoginService,
				fx.As(new(handlers.OperatorLoginService)),
			),
			handlers.NewOperatorLoginHandler,
		),
		fx.Invoke(registerAuthRoutes),
	)
}
