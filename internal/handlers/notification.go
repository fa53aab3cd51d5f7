package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

type NotificationSender interface {
	SendEmail(ctx context.Context, params vo.NotificationParams) error
}

type NotificationHandler struct {
	service NotificationSender
	logger  *slog.Logger
}

func NewNotificationHandler(service NotificationSender, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{service: service, logger: logger}
}

func (h *NotificationHandler) Register(router fiber.Router) {
	router.Post("/notifications/email", h.Handle)
}

func (h *NotificationHandler) Handle(c fiber.Ctx) error {
	var requestBody vo.NotificationParams
	if ok, err := bindRequest(c, &requestBody); !ok {
		return err
	}

	if err := h.service.SendEmail(c.Context(), requestBody); err != nil {
		return respondError(c, h.logger, "send email", err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "sent"})
}
