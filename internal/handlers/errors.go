package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
	"github.com/joshuarp/gnoss-api-wrapper/internal/gnoss"
)

// respondError maps the error taxonomy to a status. Unclassified errors are
// logged and hidden behind a generic message.
func respondError(c fiber.Ctx, logger *slog.Logger, action string, err error) error {
	var remoteErr *vo.RemoteAPIError

	switch {
	case errors.Is(err, vo.ErrInvalidArgument):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, vo.ErrMassiveLoadNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "massive load not found"})
	case errors.Is(err, vo.ErrMassiveLoadClosed):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "massive load is closed"})
	case errors.Is(err, vo.ErrCategoryResolution):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &remoteErr):
		logger.Warn("gnoss call failed", "action", action, "status", remoteErr.StatusCode, "url", remoteErr.URL)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": remoteErr.Message})
	}

	logger.Error("failed to "+action, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

func invalidBody(c fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request body",
	})
}

// bindRequest decodes the JSON body into dst and checks its validate tags.
// On false the 400 response has already been written.
func bindRequest(c fiber.Ctx, dst any) (bool, error) {
	if err := c.Bind().JSON(dst); err != nil {
		return false, invalidBody(c)
	}

	if err := gnoss.Validate(dst); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return true, nil
}
