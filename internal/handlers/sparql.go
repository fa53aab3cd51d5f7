package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

type SparqlQuerier interface {
	Query(ctx context.Context, params vo.SparqlQueryParams) (vo.SparqlObject, error)
}

type SparqlHandler struct {
	querier SparqlQuerier
	logger  *slog.Logger
}

func NewSparqlHandler(querier SparqlQuerier, logger *slog.Logger) *SparqlHandler {
	return &SparqlHandler{querier: querier, logger: logger}
}

func (h *SparqlHandler) Register(router fiber.Router) {
	router.Post("/sparql/query", h.Handle)
}

func (h *SparqlHandler) Handle(c fiber.Ctx) error {
	var requestBody vo.SparqlQueryParams
	if ok, err := bindRequest(c, &requestBody); !ok {
		return err
	}

	result, err := h.querier.Query(c.Context(), requestBody)
	if err != nil {
		return respondError(c, h.logger, "run sparql query", err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
