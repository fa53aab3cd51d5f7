package handlers

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

type OperatorLoginService interface {
	Login(ctx context.Context, email, password string) (vo.OperatorLogin, error)
}

// OperatorLoginHandler exchanges operator credentials for a gateway token.
// It is the only route served without a token.
type OperatorLoginHandler struct {
	service OperatorLoginService
	logger  *slog.Logger
}

type operatorLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func NewOperatorLoginHandler(service OperatorLoginService, logger *slog.Logger) *OperatorLoginHandler {
	return &OperatorLoginHandler{service: service, logger: logger}
}

func (h *OperatorLoginHandler) Register(router fiber.Router) {
	router.Post("/auth/login", h.Handle)
}

func (h *OperatorLoginHandler) Handle(c fiber.Ctx) error {
	var req operatorLoginRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	login, err := h.service.Login(c.Context(), email, req.Password)
	switch {
	case err == nil:
		return c.Status(fiber.StatusOK).JSON(login)
	case errors.Is(err, vo.ErrInvalidCredentials):
		h.logger.Warn("operator login refused", "email_domain", emailDomain(email))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid email or password",
		})
	}

	h.logger.Error("operator login failed", "email_domain", emailDomain(email), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

// emailDomain keeps addresses out of the logs while leaving enough to spot a
// misconfigured community.
func emailDomain(email string) string {
	if at := strings.LastIndexByte(email, '@'); at >= 0 {
		return email[at+1:]
	}
	return ""
}
