package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

type MassiveLoadService interface {
	Create(ctx context.Context, name string, organizationID uuid.UUID) (domain.MassiveLoad, error)
	AddResource(ctx context.Context, loadID uuid.UUID, ontologyURL string, resource domain.MassiveResource) error
	Close(ctx context.Context, loadID uuid.UUID) (vo.MassiveLoadStatus, error)
	Status(loadID uuid.UUID) (vo.MassiveLoadStatus, error)
}

type MassiveLoadHandler struct {
	service MassiveLoadService
	logger  *slog.Logger
}

type createMassiveLoadRequest struct {
	Name           string    `json:"name" validate:"required"`
	OrganizationID uuid.UUID `json:"organization_id"`
}

type massiveLoadResponse struct {
	LoadID         uuid.UUID `json:"load_id"`
	Name           string    `json:"name"`
	Community      string    `json:"community_short_name"`
	OrganizationID uuid.UUID `json:"organization_id"`
	State          string    `json:"state"`
	CreatedAt      time.Time `json:"created_at"`
}

type massiveResourceRequest struct {
	ID              uuid.UUID `json:"id"`
	OntologyTriples []string  `json:"ontology_triples" validate:"required,min=1"`
	SearchTriples   []string  `json:"search_triples"`
	AcidValue       string    `json:"acid_value"`
}

type addMassiveResourcesRequest struct {
	OntologyURL string                   `json:"ontology_url" validate:"required"`
	Resources   []massiveResourceRequest `json:"resources" validate:"required,min=1,dive"`
}

func NewMassiveLoadHandler(service MassiveLoadService, logger *slog.Logger) *MassiveLoadHandler {
	return &MassiveLoadHandler{service: service, logger: logger}
}

// Register mounts every route but creation, which is guarded by the
// idempotency middleware and mounted with HandleCreate.
func (h *MassiveLoadHandler) Register(router fiber.Router) {
	router.Get("/massive-loads/:id", h.HandleStatus)
	router.Post("/massive-loads/:id/resources", h.HandleAddResources)
	router.Post("/massive-loads/:id/close", h.HandleClose)
}

func (h *MassiveLoadHandler) HandleCreate(c fiber.Ctx) error {
	var requestBody createMassiveLoadRequest
	if ok, err := bindRequest(c, &requestBody); !ok {
		return err
	}

	load, err := h.service.Create(c.Context(), requestBody.Name, requestBody.OrganizationID)
	if err != nil {
		return respondError(c, h.logger, "create massive load", err)
	}

	return c.Status(fiber.StatusCreated).JSON(massiveLoadResponse{
		LoadID:         load.ID,
		Name:           load.Name,
		Community:      load.Community,
		OrganizationID: load.OrganizationID,
		State:          string(load.State),
		CreatedAt:      load.CreatedAt,
	})
}

func (h *MassiveLoadHandler) HandleAddResources(c fiber.Ctx) error {
	loadID, ok, err := loadIDParam(c)
	if !ok {
		return err
	}

	var requestBody addMassiveResourcesRequest
	if ok, err := bindRequest(c, &requestBody); !ok {
		return err
	}

	for _, r := range requestBody.Resources {
		resource := domain.MassiveResource{
			ID:              r.ID,
			OntologyTriples: r.OntologyTriples,
			SearchTriples:   r.SearchTriples,
			AcidValue:       r.AcidValue,
		}
		if resource.ID == uuid.Nil {
			resource.ID = uuid.New()
		}

		if err := h.service.AddResource(c.Context(), loadID, requestBody.OntologyURL, resource); err != nil {
			return respondError(c, h.logger, "add massive load resource", err)
		}
	}

	status, err := h.service.Status(loadID)
	if err != nil {
		return respondError(c, h.logger, "read massive load status", err)
	}
	return c.Status(fiber.StatusAccepted).JSON(status)
}

func (h *MassiveLoadHandler) HandleClose(c fiber.Ctx) error {
	loadID, ok, err := loadIDParam(c)
	if !ok {
		return err
	}

	status, err := h.service.Close(c.Context(), loadID)
	if err != nil {
		return respondError(c, h.logger, "close massive load", err)
	}
	return c.Status(fiber.StatusOK).JSON(status)
}

func (h *MassiveLoadHandler) HandleStatus(c fiber.Ctx) error {
	loadID, ok, err := loadIDParam(c)
	if !ok {
		return err
	}

	status, err := h.service.Status(loadID)
	if err != nil {
		return respondError(c, h.logger, "read massive load status", err)
	}
	return c.Status(fiber.StatusOK).JSON(status)
}

func loadIDParam(c fiber.Ctx) (uuid.UUID, bool, error) {
	loadID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid massive load id",
		})
	}
	return loadID, true, nil
}
