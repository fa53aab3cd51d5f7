package middlewares

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

// NewHTTPCORSMiddleware allows the listed origins. None configured allows
// every origin.
func NewHTTPCORSMiddleware(allowOrigins []string) fiber.Handler {
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	return cors.New(cors.Config{
		AllowOrigins:  allowOrigins,
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader, IdempotencyKeyHeader},
		AllowMethods:  []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodOptions},
		ExposeHeaders: []string{RequestIDHeader, "Retry-After"},
	})
}
