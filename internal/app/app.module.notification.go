package app

import (
	"github.com/joshuarp/gnoss-api-wrapper/internal/gnoss"
	"github.com/joshuarp/gnoss-api-wrapper/internal/handlers"
	"github.com/joshuarp/gnoss-api-wrapper/internal/services"
	"go.uber.org/fx"
)

func NotificationModule() fx.Option {
	return fx.Module("notification",
		fx.Provide(
			fx.Annotate(
				gnoss.NewNotificationClient,
				fx.As(new(services.NotificationGateway)),
			),
			fx.Annotate(
				services.NewNotificationService,
				fx.As(new(handlers.NotificationSender)),
			),
			handlers.NewNotificationHandler,
		),
		fx.Invoke(registerNotificationRoutes),
	)
}
