package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	sharedjwt "github.com/joshuarp/gnoss-api-wrapper/internal/shared/jwt"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/ratelimit"
)

const (
	OperatorIDLocal = "operator_id"
	ClaimsLocal     = "jwt_claims"
)

// NewHTTPJWTMiddleware authenticates operators. Tokens scoped to another
// community than the one the gateway serves are refused. An empty community
// accepts every token.
func NewHTTPJWTMiddleware(tokenManager sharedjwt.TokenManager, community string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if isPublicRoute(c) {
			return c.Next()
		}

		authorizationHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		parts := strings.SplitN(authorizationHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing or invalid authorization header",
			})
		}

		claims, err := tokenManager.Verify(c.Context(), strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		if community != "" && claims.Community != "" && claims.Community != community {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "token is not valid for this community",
			})
		}

		c.Locals(OperatorIDLocal, claims.Subject)
		c.Locals(ClaimsLocal, claims)

		ctx := sharedjwt.WithClaims(c.Context(), claims)
		c.SetContext(ratelimit.WithOperator(ctx, claims.Subject))
		return c.Next()
	}
}

// OperatorIDFromContext returns the authenticated operator, if any.
func OperatorIDFromContext(c fiber.Ctx) string {
	operatorID, _ := c.Locals(OperatorIDLocal).(string)
	return operatorID
}

func isPublicRoute(c fiber.Ctx) bool {
	path := c.Path()
	if path == healthPath {
		return true
	}
	return c.Method() == fiber.MethodPost && strings.HasSuffix(path, "/auth/login")
}
