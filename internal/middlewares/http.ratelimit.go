package middlewares

import (
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/ratelimit"
)

// RateLimitConfig throttles the batch endpoints that fan out into many
// GNOSS calls.
type RateLimitConfig struct {
	Limiter ratelimit.Limiter

	// Scope prefixes every bucket key, e.g. "resources".
	Scope string

	// PathPrefix restricts the limit to matching paths. Group middlewares in
	// fiber see every path under the parent prefix.
	PathPrefix string

	// KeyExtractor defaults to PerOperatorKeyExtractor(Scope).
	KeyExtractor func(c fiber.Ctx) string

	Logger *slog.Logger
}

func NewHTTPRateLimitMiddleware(cfg RateLimitConfig) fiber.Handler {
	if cfg.Limiter == nil {
		return func(c fiber.Ctx) error {
			return c.Next()
		}
	}
	if cfg.KeyExtractor == nil {
		cfg.KeyExtractor = PerOperatorKeyExtractor(cfg.Scope)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return func(c fiber.Ctx) error {
		if cfg.PathPrefix != "" && !strings.HasPrefix(c.Path(), cfg.PathPrefix) {
			return c.Next()
		}

		ctx := ratelimit.WithIP(c.Context(), c.IP())
		if operatorID := OperatorIDFromContext(c); operatorID != "" {
			ctx = ratelimit.WithOperator(ctx, operatorID)
		}

		bucket := cfg.KeyExtractor(c)
		result, err := cfg.Limiter.AllowKey(ctx, bucket)
		if err != nil {
			cfg.Logger.Error("batch rate limit unavailable", "scope", cfg.Scope, "bucket", bucket, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "internal server error",
			})
		}

		c.Set("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Set("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
		if result.Allowed {
			return c.Next()
		}

		// Retry-After is whole seconds and never zero.
		waitSeconds := int(math.Max(1, math.Ceil(result.RetryAfter.Seconds())))
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(waitSeconds))
		cfg.Logger.Warn("batch rate limit exceeded", "scope", cfg.Scope, "bucket", bucket, "retry_after_s", waitSeconds)

		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":       "rate limit exceeded",
			"scope":       cfg.Scope,
			"retry_after": waitSeconds,
		})
	}
}

// PerOperatorKeyExtractor buckets authenticated calls by operator and falls
// back to the client IP before authentication.
func PerOperatorKeyExtractor(scope string) func(c fiber.Ctx) string {
	return func(c fiber.Ctx) string {
		if operatorID := OperatorIDFromContext(c); operatorID != "" {
			return scope + ":operator:" + operatorID
		}
		return scope + ":ip:" + c.IP()
	}
}
