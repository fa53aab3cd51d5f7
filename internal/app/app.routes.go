package app

import (
	"log/slog"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/handlers"
	"github.com/joshuarp/gnoss-api-wrapper/internal/middlewares"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/config"
	sharedidempotency "github.com/joshuarp/gnoss-api-wrapper/internal/shared/idempotency"
	sharedjwt "github.com/joshuarp/gnoss-api-wrapper/internal/shared/jwt"
	sharedratelimit "github.com/joshuarp/gnoss-api-wrapper/internal/shared/ratelimit"
	"go.uber.org/fx"
)

const apiPrefix = "/api/v1"

type routerGroupsOut struct {
	fx.Out
	Public    fiber.Router `name:"api_public"`
	Protected fiber.Router `name:"api_protected"`
}

func provideRouterGroups(
	app *fiber.App,
	cfg config.ConfigProvider,
	creds domain.Credentials,
	logger *slog.Logger,
	tokenManager sharedjwt.TokenManager,
) routerGroupsOut {
	app.Use(middlewares.NewHTTPRecoveryMiddleware(logger))
	app.Use(middlewares.NewHTTPRequestIDMiddleware())
	app.Use(middlewares.NewHTTPAffinityMiddleware())
	app.Use(middlewares.NewHTTPCORSMiddleware(cfg.GetStringSlice("server.cors.allow_origins")))
	app.Use(middlewares.NewHTTPRequestResponseLogMiddleware(logger))

	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group(apiPrefix)
	protected := api.Group("", middlewares.NewHTTPJWTMiddleware(tokenManager, creds.CommunityShortName))

	return routerGroupsOut{
		Public:    api,
		Protected: protected,
	}
}

// batchRouter is the protected group behind the per-operator batch limit.
func batchRouter(protected fiber.Router, limiter sharedratelimit.Limiter, logger *slog.Logger, scope, pathPrefix string) fiber.Router {
	return protected.Group("", middlewares.NewHTTPRateLimitMiddleware(middlewares.RateLimitConfig{
		Limiter:    limiter,
		Scope:      scope,
		PathPrefix: pathPrefix,
		Logger:     logger,
	}))
}

type authRoutesIn struct {
	fx.In
	Public  fiber.Router `name:"api_public"`
	Handler *handlers.OperatorLoginHandler
}

func registerAuthRoutes(in authRoutesIn) {
	in.Handler.Register(in.Public)
}

type resourceRoutesIn struct {
	fx.In
	Protected   fiber.Router            `name:"api_protected"`
	RateLimiter sharedratelimit.Limiter `name:"batch_rate_limiter"`
	Logger      *slog.Logger
	Resources   *handlers.ResourceHandler
	Sparql      *handlers.SparqlHandler
}

func registerResourceRoutes(in resourceRoutesIn) {
	in.Resources.Register(batchRouter(in.Protected, in.RateLimiter, in.Logger, "resources", apiPrefix+"/resources"))
	in.Sparql.Register(in.Protected)
}

type thesaurusRoutesIn struct {
	fx.In
	Protected fiber.Router `name:"api_protected"`
	Handler   *handlers.ThesaurusHandler
}

func registerThesaurusRoutes(in thesaurusRoutesIn) {
	in.Handler.Register(in.Protected)
}

type notificationRoutesIn struct {
	fx.In
	Protected fiber.Router `name:"api_protected"`
	Handler   *handlers.NotificationHandler
}

func registerNotificationRoutes(in notificationRoutesIn) {
	in.Handler.Register(in.Protected)
}

type massiveLoadRoutesIn struct {
	fx.In
	Protected        fiber.Router            `name:"api_protected"`
	RateLimiter      sharedratelimit.Limiter `name:"batch_rate_limiter"`
	IdempotencyStore sharedidempotency.Store `name:"massive_load_idempotency_store"`
	Logger           *slog.Logger
	Handler          *handlers.MassiveLoadHandler
}

func registerMassiveLoadRoutes(in massiveLoadRoutesIn) {
	router := batchRouter(in.Protected, in.RateLimiter, in.Logger, "massive-load", apiPrefix+"/massive-loads")
	router.Post("/massive-loads", middlewares.NewHTTPIdempotencyMiddleware(in.IdempotencyStore, "massive-load"), in.Handler.HandleCreate)
	in.Handler.Register(router)
}
