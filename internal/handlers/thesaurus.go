package handlers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

type ThesaurusService interface {
	GetThesaurus(ctx context.Context, thesaurusOntologyURL, source string) (string, error)
	MoveNode(ctx context.Context, params vo.MoveNodeParams) error
	DeleteNode(ctx context.Context, params vo.MoveNodeParams) error
	SetNodeParent(ctx context.Context, params vo.ParentNodeParams) error
	ChangeNodeName(ctx context.Context, params vo.ChangeNodeNameParams) error
	InsertNode(ctx context.Context, params vo.InsertNodeParams) error
}

type CategoryResolver interface {
	ResolveCategoryIDs(ctx context.Context, names []string, hierarchical bool, community string) ([]uuid.UUID, error)
}

type ThesaurusHandler struct {
	service  ThesaurusService
	resolver CategoryResolver
	logger   *slog.Logger
}

type resolveCategoriesRequest struct {
	Names        []string `json:"names" validate:"required,min=1,dive,required"`
	Hierarchical bool     `json:"hierarchical"`
	Community    string   `json:"community_short_name"`
}

func NewThesaurusHandler(service ThesaurusService, resolver CategoryResolver, logger *slog.Logger) *ThesaurusHandler {
	return &ThesaurusHandler{service: service, resolver: resolver, logger: logger}
}

func (h *ThesaurusHandler) Register(router fiber.Router) {
	router.Get("/thesaurus", h.HandleGet)
	router.Post("/thesaurus/categories/resolve", h.HandleResolve)
	router.Post("/thesaurus/nodes/:action", h.HandleNode)
}

func (h *ThesaurusHandler) HandleGet(c fiber.Ctx) error {
	ontologyURL := strings.TrimSpace(c.Query("ontology_url"))
	if ontologyURL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ontology_url is required",
		})
	}

	thesaurus, err := h.service.GetThesaurus(c.Context(), ontologyURL, c.Query("source"))
	if err != nil {
		return respondError(c, h.logger, "get thesaurus", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"thesaurus": thesaurus})
}

func (h *ThesaurusHandler) HandleResolve(c fiber.Ctx) error {
	var requestBody resolveCategoriesRequest
	if ok, err := bindRequest(c, &requestBody); !ok {
		return err
	}

	ids, err := h.resolver.ResolveCategoryIDs(c.Context(), requestBody.Names, requestBody.Hierarchical, requestBody.Community)
	if err != nil {
		return respondError(c, h.logger, "resolve categories", err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"category_ids": ids})
}

// HandleNode dispatches on the action segment. Missing community names are
// filled with the configured community before the call is validated.
func (h *ThesaurusHandler) HandleNode(c fiber.Ctx) error {
	var err error

	switch action := c.Params("action"); action {
	case "move", "delete":
		var params vo.MoveNodeParams
		if err := c.Bind().JSON(&params); err != nil {
			return invalidBody(c)
		}
		if action == "move" {
			err = h.service.MoveNode(c.Context(), params)
		} else {
			err = h.service.DeleteNode(c.Context(), params)
		}
	case "parent":
		var params vo.ParentNodeParams
		if err := c.Bind().JSON(&params); err != nil {
			return invalidBody(c)
		}
		err = h.service.SetNodeParent(c.Context(), params)
	case "rename":
		var params vo.ChangeNodeNameParams
		if err := c.Bind().JSON(&params); err != nil {
			return invalidBody(c)
		}
		err = h.service.ChangeNodeName(c.Context(), params)
	case "insert":
		var params vo.InsertNodeParams
		if err := c.Bind().JSON(&params); err != nil {
			return invalidBody(c)
		}
		err = h.service.InsertNode(c.Context(), params)
	default:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "unknown node action",
		})
	}

	if err != nil {
		return respondError(c, h.logger, "edit thesaurus node", err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}
