package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/config"
	sharedhash "github.com/joshuarp/gnoss-api-wrapper/internal/shared/hash"
	sharedjwt "github.com/joshuarp/gnoss-api-wrapper/internal/shared/jwt"
	sharedlog "github.com/joshuarp/gnoss-api-wrapper/internal/shared/log"
	"go.uber.org/fx"
)

// Binaries selectable with -bin. The empty value and "all" start every module.
const (
	BinResources     = "resources"
	BinThesaurus     = "thesaurus"
	BinNotifications = "notifications"
	BinMassiveLoad   = "massiveload"
)

type configBinIn struct {
	fx.In
	Bin string `name:"bin"`
}

func New(bin string, modules ...fx.Option) *fx.App {
	return fx.New(appOptions(bin, modules...)...)
}

func appOptions(bin string, modules ...fx.Option) []fx.Option {
	opts := []fx.Option{
		fx.Supply(
			fx.Annotate(
				NormalizeBin(bin),
				fx.ResultTags(`name:"bin"`),
			),
		),
		CoreModule(),
	}
	opts = append(opts, modules...)
	return append(opts, fx.Invoke(registerLifecycle))
}

// ModulesFor returns the feature modules served by bin. Unknown values start
// every module.
func ModulesFor(bin string) []fx.Option {
	switch NormalizeBin(bin) {
	case BinResources:
		return []fx.Option{AuthModule(), ResourcesModule()}
	case BinThesaurus:
		return []fx.Option{AuthModule(), ThesaurusModule()}
	case BinNotifications:
		return []fx.Option{AuthModule(), NotificationModule()}
	case BinMassiveLoad:
		return []fx.Option{AuthModule(), MassiveLoadModule()}
	default:
		return []fx.Option{
			AuthModule(),
			ResourcesModule(),
			ThesaurusModule(),
			NotificationModule(),
			MassiveLoadModule(),
		}
	}
}

// NormalizeBin lower-cases bin and accepts the hyphenated massive-load
// spelling.
func NormalizeBin(bin string) string {
	normalized := strings.TrimSpace(strings.ToLower(bin))
	if normalized == "massive-load" || normalized == "massive_load" {
		return BinMassiveLoad
	}
	return normalized
}

func CoreModule() fx.Option {
	return fx.Module("core",
		fx.Provide(
			provideConfig,
			sharedlog.NewJSONLogger,
			provideRedisClient,
			fx.Annotate(
				provideGatewayPostgresSQLX,
				fx.ResultTags(`name:"db_gateway"`),
			),
			fx.Annotate(
				provideJournalPostgresSQLX,
				fx.ResultTags(`name:"db_journal"`),
			),
			fx.Annotate(
				provideBatchRateLimiter,
				fx.ResultTags(`name:"batch_rate_limiter"`),
			),
			provideFiberApp,
			providePasswordHasher,
			provideJWTTokenManager,
			provideRouterGroups,
		),
		GnossModule(),
	)
}

func provideConfig(in configBinIn) (config.ConfigProvider, error) {
	var lastErr error
	for _, opts := range configCandidates(NormalizeBin(in.Bin)) {
		provider, err := config.Init(opts)
		if err == nil {
			return provider, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// configCandidates lists config sources by precedence. A module binary reads
// its own files before the shared ones, and committed .example files come
// last so a fresh checkout still boots.
func configCandidates(bin string) []config.Options {
	stems := []string{""}
	if !isSingleBinaryBin(bin) {
		stems = []string{"." + bin, ""}
	}

	candidates := make([]config.Options, 0, 2*len(stems))
	for _, stem := range stems {
		candidates = append(candidates,
			config.Options{
				XMLPath:  "gnoss.config" + stem + ".xml",
				YAMLPath: "config" + stem + ".yaml",
				EnvPath:  ".env" + stem,
			},
			config.Options{
				YAMLPath: "config" + stem + ".yaml.example",
				EnvPath:  ".env" + stem + ".example",
			},
		)
	}
	return candidates
}

func provideFiberApp(cfg config.ConfigProvider) *fiber.App {
	readTimeout := cfg.GetDuration("server.read_timeout")
	if readTimeout <= 0 {
		readTimeout = 30 * time.Second
	}

	// Batch loads wait on GNOSS for every resource, so writes get more room.
	writeTimeout := cfg.GetDuration("server.write_timeout")
	if writeTimeout <= 0 {
		writeTimeout = 5 * time.Minute
	}

	return fiber.New(fiber.Config{
		AppName:      "gnoss-gateway",
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})
}

func providePasswordHasher(cfg config.ConfigProvider) (sharedhash.Hasher, error) {
	return sharedhash.New(sharedhash.Options{
		Strategy: sharedhash.StrategyBcrypt,
		Cost:     cfg.GetInt("security.bcrypt_cost"),
	})
}

func provideJWTTokenManager(cfg config.ConfigProvider) (sharedjwt.TokenManager, error) {
	secret := cfg.GetString("security.jwt.secret")
	if secret == "" {
		secret = cfg.GetString("jwt.secret")
	}
	if secret == "" {
		secret = "change-me-please-use-strong-secret-in-production"
	}

	if len(secret) < 32 {
		secret = secret + strings.Repeat("x", 32-len(secret))
	}

	ttl := cfg.GetDuration("security.jwt.ttl")
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	tokenManager, err := sharedjwt.New(sharedjwt.Options{
		Strategy:  sharedjwt.StrategyHMAC,
		Secret:    []byte(secret),
		Algorithm: "HS256",
		TTL:       ttl,
		Issuer:    cfg.GetString("security.jwt.issuer"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init JWT manager: %w", err)
	}

	return tokenManager, nil
}
