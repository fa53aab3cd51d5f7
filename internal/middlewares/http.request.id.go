package middlewares

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/affinity"
)

const RequestIDHeader = affinity.Header

func NewHTTPRequestIDMiddleware() fiber.Handler {
	return requestid.New(requestid.Config{
		Header: RequestIDHeader,
	})
}

// NewHTTPAffinityMiddleware pins the request id as the affinity token, so
// every GNOSS call made while serving the request carries the same id. It
// must run after the request id middleware.
func NewHTTPAffinityMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if requestID := RequestIDFromContext(c); requestID != "" {
			c.SetContext(affinity.WithToken(c.Context(), requestID))
		}
		return c.Next()
	}
}

func RequestIDFromContext(c fiber.Ctx) string {
	requestID := requestid.FromContext(c)
	if requestID != "" {
		return requestID
	}

	return c.Get(RequestIDHeader)
}
