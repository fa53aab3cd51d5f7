package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/config"
	sharedratelimit "github.com/joshuarp/gnoss-api-wrapper/internal/shared/ratelimit"
)

const rateLimitPrefix = "gnoss-gateway"

func provideRedisClient(cfg config.ConfigProvider) *redis.Client {
	host := strings.TrimSpace(cfg.GetString("redis.host"))
	if host == "" {
		host = "localhost"
	}

	port := cfg.GetInt("redis.port")
	if port == 0 {
		port = 6379
	}

	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.GetString("redis.password"),
		DB:       cfg.GetInt("redis.db"),
	})
}

// provideBatchRateLimiter limits operators on the batch routes.
func provideBatchRateLimiter(cfg config.ConfigProvider, redisClient *redis.Client, logger *slog.Logger) (sharedratelimit.Limiter, error) {
	if redisClient == nil {
		return nil, fmt.Errorf("app: redis client is required for batch rate limiter")
	}
	return newRedisLimiter(cfg, redisClient, logger, "batch", 20)
}

// provideOutboundRateLimiter bounds the GNOSS call rate of all gateway
// instances together. It is disabled unless rate_limit.outbound.limit is set.
func provideOutboundRateLimiter(cfg config.ConfigProvider, redisClient *redis.Client, logger *slog.Logger) (sharedratelimit.Limiter, error) {
	if redisClient == nil || cfg.GetInt("rate_limit.outbound.limit") <= 0 {
		return nil, nil
	}
	return newRedisLimiter(cfg, redisClient, logger, "outbound", 0)
}

func newRedisLimiter(
	cfg config.ConfigProvider,
	redisClient *redis.Client,
	logger *slog.Logger,
	scope string,
	defaultLimit int,
) (sharedratelimit.Limiter, error) {
	limit := cfg.GetInt("rate_limit." + scope + ".limit")
	if limit <= 0 {
		limit = defaultLimit
	}

	window := cfg.GetDuration("rate_limit." + scope + ".window")
	if window <= 0 {
		window = time.Minute
	}

	burst := cfg.GetInt("rate_limit." + scope + ".burst")
	if burst <= 0 {
		burst = limit
	}

	algorithm := sharedratelimit.ParseAlgorithm(cfg.GetString("rate_limit." + scope + ".algorithm"))
	store := sharedratelimit.NewRedisStore(redisClient, sharedratelimit.WithRedisPrefix(rateLimitPrefix+":"+scope))

	return sharedratelimit.New(store, sharedratelimit.Config{
		Algorithm: algorithm,
		Limit:     int64(limit),
		Window:    window,
		Burst:     int64(burst),
		OnLimited: func(_ context.Context, key string, result sharedratelimit.Result) {
			if logger != nil {
				logger.Warn("rate limit exceeded", "scope", scope, "key", key, "limit", result.Limit)
			}
		},
	})
}
