package app

import (
	"github.com/joshuarp/gnoss-api-wrapper/internal/gnoss"
	"github.com/joshuarp/gnoss-api-wrapper/internal/handlers"
	"github.com/joshuarp/gnoss-api-wrapper/internal/repository"
	"github.com/joshuarp/gnoss-api-wrapper/internal/services"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/config"
	"go.uber.org/fx"
)

func ResourcesModule() fx.Option {
	return fx.Module("resources",
		fx.Provide(
			fx.Annotate(
				gnoss.NewResourceClient,
				fx.As(new(services.ResourceGateway)),
				fx.As(new(handlers.SparqlQuerier)),
			),
			fx.Annotate(
				repository.NewLoadJournalRepository,
				fx.ParamTags(`name:"db_journal"`),
				fx.As(new(services.ResourceJournalRepository)),
			),
			provideResourceBatchOptions,
			fx.Annotate(
				services.NewResourceBatchService,
				fx.As(new(handlers.ResourceBatchService)),
			),
			handlers.NewResourceHandler,
			handlers.NewSparqlHandler,
		),
		fx.Invoke(registerResourceRoutes),
	)
}

func provideResourceBatchOptions(cfg config.ConfigProvider) services.ResourceBatchOptions {
	return services.ResourceBatchOptions{
		RDFArchivePath: cfg.GetString("resources.rdf_archive_path"),
		Pause:          cfg.GetDuration("resources.retry_pause"),
	}
}
