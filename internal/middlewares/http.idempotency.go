package middlewares

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v3"

	sharedidempotency "github.com/joshuarp/gnoss-api-wrapper/internal/shared/idempotency"
)

const (
	IdempotencyKeyHeader = "X-Idempotency-Key"

	// StandardIdempotencyKeyHeader is accepted when the X- header is absent.
	StandardIdempotencyKeyHeader = "Idempotency-Key"

	// IdempotentReplayHeader marks responses served from the store.
	IdempotentReplayHeader = "Idempotent-Replayed"
)

// NewHTTPIdempotencyMiddleware guards a GNOSS call that must not run twice,
// such as opening a massive load. A retried request with the same key and
// body replays the first response. Keys live in scope per operator.
func NewHTTPIdempotencyMiddleware(store sharedidempotency.Store, scope string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if store == nil {
			return idempotencyError(c, fiber.StatusInternalServerError, "idempotency store is not available")
		}

		operatorID := strings.TrimSpace(OperatorIDFromContext(c))
		if operatorID == "" {
			return idempotencyError(c, fiber.StatusUnauthorized, "missing authenticated operator")
		}

		key := idempotencyKey(c)
		if key == "" {
			return idempotencyError(c, fiber.StatusBadRequest, "missing idempotency key")
		}

		request := sharedidempotency.Request{
			Scope:       scope + ":" + operatorID,
			Key:         key,
			RequestHash: requestHash(c.Method(), c.Path(), operatorID, c.BodyRaw()),
		}
		decision, err := store.Acquire(c.Context(), request)
		if err != nil {
			return idempotencyError(c, fiber.StatusInternalServerError, "failed to acquire idempotency key")
		}

		switch decision.Type {
		case sharedidempotency.DecisionAcquired:
		case sharedidempotency.DecisionReplay:
			return replayDecision(c, decision)
		case sharedidempotency.DecisionInProgress:
			return idempotencyError(c, fiber.StatusConflict, "request is already in progress")
		case sharedidempotency.DecisionConflict:
			return idempotencyError(c, fiber.StatusConflict, "idempotency key reused with different payload")
		default:
			return idempotencyError(c, fiber.StatusInternalServerError, "invalid idempotency state")
		}

		handlerErr := c.Next()
		stored := sharedidempotency.StoredResponse{
			StatusCode:  c.Response().StatusCode(),
			Body:        append([]byte(nil), c.Response().Body()...),
			ContentType: string(c.Response().Header.ContentType()),
		}
		if err := store.Complete(c.Context(), request, stored); err != nil && handlerErr == nil {
			return idempotencyError(c, fiber.StatusInternalServerError, "failed to persist idempotency response")
		}
		return handlerErr
	}
}

func idempotencyKey(c fiber.Ctx) string {
	if key := strings.TrimSpace(c.Get(IdempotencyKeyHeader)); key != "" {
		return key
	}
	return strings.TrimSpace(c.Get(StandardIdempotencyKeyHeader))
}

func replayDecision(c fiber.Ctx, decision sharedidempotency.Decision) error {
	status := decision.StatusCode
	if status <= 0 {
		status = fiber.StatusOK
	}
	if decision.ContentType != "" {
		c.Set(fiber.HeaderContentType, decision.ContentType)
	}
	c.Set(IdempotentReplayHeader, "true")
	return c.Status(status).Send(decision.Body)
}

func idempotencyError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// requestHash fingerprints a request. Method, path and operator are trimmed
// so cosmetic differences do not turn a retry into a conflict.
func requestHash(method, path, operatorID string, body []byte) string {
	header := strings.Join([]string{
		strings.ToUpper(strings.TrimSpace(method)),
		strings.TrimSpace(path),
		strings.TrimSpace(operatorID),
	}, "\n")

	sum := sha256.New()
	sum.Write([]byte(header + "\n"))
	sum.Write(body)
	return hex.EncodeToString(sum.Sum(nil))
}
