package middlewares

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"

	sharedjwt "github.com/joshuarp/gnoss-api-wrapper/internal/shared/jwt"
)

const healthPath = "/healthz"

// NewHTTPRequestResponseLogMiddleware writes one access line per gateway
// request. Client errors log at warn and server errors at error. Health
// checks are not logged.
func NewHTTPRequestResponseLogMiddleware(logger *slog.Logger) fiber.Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c fiber.Ctx) error {
		if c.Path() == healthPath {
			return c.Next()
		}

		began := time.Now()
		handlerErr := c.Next()
		status := c.Response().StatusCode()

		level := slog.LevelInfo
		switch {
		case handlerErr != nil || status >= fiber.StatusInternalServerError:
			level = slog.LevelError
		case status >= fiber.StatusBadRequest:
			level = slog.LevelWarn
		}

		attrs := []slog.Attr{
			slog.String("request_id", RequestIDFromContext(c)),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Int64("duration_ms", time.Since(began).Milliseconds()),
			slog.Int("response_bytes", len(c.Response().Body())),
			slog.String("client_ip", c.IP()),
		}
		if operatorID := OperatorIDFromContext(c); operatorID != "" {
			attrs = append(attrs, slog.String("operator_id", operatorID))
		}
		if community := sharedjwt.CommunityFromContext(c.Context()); community != "" {
			attrs = append(attrs, slog.String("community", community))
		}
		if handlerErr != nil {
			attrs = append(attrs, slog.String("error", handlerErr.Error()))
		}

		logger.LogAttrs(c.Context(), level, "gateway_request", attrs...)
		return handlerErr
	}
}
