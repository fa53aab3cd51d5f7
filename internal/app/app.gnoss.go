package app

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/gnoss"
	"github.com/joshuarp/gnoss-api-wrapper/internal/handlers"
	"github.com/joshuarp/gnoss-api-wrapper/internal/repository"
	"github.com/joshuarp/gnoss-api-wrapper/internal/services"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/affinity"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/config"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/oauth"
	sharedratelimit "github.com/joshuarp/gnoss-api-wrapper/internal/shared/ratelimit"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/transport"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/uid"
)

// GnossModule provides the signed client stack every feature module shares:
// credentials, signer, correlator, transport and category resolution.
func GnossModule() fx.Option {
	return fx.Module("gnoss",
		fx.Provide(
			config.LoadCredentials,
			fx.Annotate(
				provideNonceGenerator,
				fx.ResultTags(`name:"nonce_generator"`),
			),
			provideIDGenerator,
			fx.Annotate(
				provideOAuthSigner,
				fx.ParamTags(``, `name:"nonce_generator"`),
			),
			provideCorrelator,
			fx.Annotate(
				provideOutboundRateLimiter,
				fx.ResultTags(`name:"outbound_rate_limiter"`),
			),
			fx.Annotate(
				provideSignedClient,
				fx.ParamTags(``, ``, ``, `name:"outbound_rate_limiter"`, ``),
				fx.As(new(transport.Client)),
			),
			fx.Annotate(
				gnoss.NewCommunityClient,
				fx.As(new(services.CategorySource)),
				fx.As(new(services.LoadRegistrar)),
			),
			fx.Annotate(
				provideThesaurusCache,
				fx.As(new(services.CategoryCacheRepository)),
			),
			fx.Annotate(
				services.NewCategoryResolver,
				fx.As(new(services.CategoryIDResolver)),
				fx.As(new(services.CategoryCacheInvalidator)),
				fx.As(new(handlers.CategoryResolver)),
			),
		),
	)
}

func provideNonceGenerator(cfg config.ConfigProvider) (uid.UIDGenerator, error) {
	return uid.New(uid.Options{
		Strategy: uid.StrategySnowflake,
		NodeID:   int64(cfg.GetInt("uid.node_id")),
	})
}

func provideIDGenerator() (uid.UIDGenerator, error) {
	return uid.New(uid.Options{Strategy: uid.StrategyUUIDv7})
}

func provideOAuthSigner(creds domain.Credentials, nonces uid.UIDGenerator) (oauth.Signer, error) {
	return oauth.New(oauth.Options{
		Strategy:       oauth.StrategyHMACSHA1,
		ConsumerKey:    creds.ConsumerKey,
		ConsumerSecret: creds.ConsumerSecret,
		TokenKey:       creds.TokenKey,
		TokenSecret:    creds.TokenSecret,
		Nonce:          nonces,
	})
}

func provideCorrelator() *affinity.Correlator {
	return affinity.NewCorrelator()
}

func provideSignedClient(
	creds domain.Credentials,
	signer oauth.Signer,
	correlator *affinity.Correlator,
	limiter sharedratelimit.Limiter,
	logger *slog.Logger,
) (*transport.SignedClient, error) {
	return transport.New(transport.Options{
		Signer:     signer,
		Correlator: correlator,
		Timeout:    creds.Timeout,
		Limiter:    limiter,
		Logger:     logger,
	})
}

func provideThesaurusCache(cfg config.ConfigProvider, client *redis.Client) *repository.ThesaurusCacheRepository {
	return repository.NewThesaurusCacheRepository(client, cfg.GetDuration("thesaurus.cache_ttl"))
}
