package app

import (
	"github.com/joshuarp/gnoss-api-wrapper/internal/gnoss"
	"github.com/joshuarp/gnoss-api-wrapper/internal/handlers"
	"github.com/joshuarp/gnoss-api-wrapper/internal/services"
	"go.uber.org/fx"
)

func ThesaurusModule() fx.Option {
	return fx.Module("thesaurus",
		fx.Provide(
			fx.Annotate(
				gnoss.NewThesaurusClient,
				fx.As(new(services.ThesaurusGateway)),
			),
			fx.Annotate(
				services.NewThesaurusService,
				fx.As(new(handlers.ThesaurusService)),
			),
			handlers.NewThesaurusHandler,
		),
		fx.Invoke(registerThesaurusRoutes),
	)
}
