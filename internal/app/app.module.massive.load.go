package app

import (
	"github.com/joshuarp/gnoss-api-wrapper/internal/gnoss"
	"github.com/joshuarp/gnoss-api-wrapper/internal/handlers"
	"github.com/joshuarp/gnoss-api-wrapper/internal/repository"
	"github.com/joshuarp/gnoss-api-wrapper/internal/services"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/config"
	sharedidempotency "github.com/joshuarp/gnoss-api-wrapper/internal/shared/idempotency"
	"go.uber.org/fx"
)

func MassiveLoadModule() fx.Option {
	return fx.Module("massive_load",
		fx.Provide(
			fx.Annotate(
				provideIdempotencyStore,
				fx.ParamTags(``, `name:"db_gateway"`),
				fx.ResultTags(`name:"massive_load_idempotency_store"`),
				fx.As(new(sharedidempotency.Store)),
			),
			fx.Annotate(
				gnoss.NewMassiveLoadClient,
				fx.As(new(services.MassiveLoadGateway)),
			),
			fx.Annotate(
				repository.NewLoadJournalRepository,
				fx.ParamTags(`name:"db_journal"`),
				fx.As(new(services.MassiveLoadJournalRepository)),
			),
			provideMassiveLoadOptions,
			fx.Annotate(
				services.NewMassiveLoadService,
				fx.As(new(handlers.MassiveLoadService)),
			),
			handlers.NewMassiveLoadHandler,
		),
		fx.Invoke(registerMassiveLoadRoutes),
	)
}

func provideMassiveLoadOptions(cfg config.ConfigProvider) services.MassiveLoadOptions {
	return services.MassiveLoadOptions{
		Dir:                    cfg.GetString("massive_load.dir"),
		PublicURL:              cfg.GetString("massive_load.public_url"),
		MaxResourcesPerPackage: cfg.GetInt("massive_load.max_resources_per_package"),
	}
}
