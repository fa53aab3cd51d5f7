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

type ResourceBatchService interface {
	CreateBasicResource(ctx context.Context, resource domain.BasicOntologyResource, hierarchical bool) (string, error)
	LoadComplexResources(ctx context.Context, resources []domain.ComplexOntologyResource, hierarchical bool, attempts int) vo.BatchReport
	DeleteResources(ctx context.Context, ids []uuid.UUID, attempts int) vo.BatchReport
	PersistentDeleteResources(ctx context.Context, ids []uuid.UUID, deleteAttached bool, attempts int) vo.BatchReport
	InsertProperties(ctx context.Context, triples map[uuid.UUID][]domain.TriplesToInclude, publishHome bool, attempts int) vo.BatchReport
	DeleteProperties(ctx context.Context, triples map[uuid.UUID][]domain.RemoveTriples, publishHome bool, attempts int) vo.BatchReport
	ModifyProperties(ctx context.Context, triples map[uuid.UUID][]domain.TriplesToModify, publishHome bool, attempts int) vo.BatchReport
}

type ResourceHandler struct {
	service ResourceBatchService
	logger  *slog.Logger
}

type basicResourceRequest struct {
	Title           string                    `json:"title" validate:"required"`
	Description     string                    `json:"description"`
	Tags            []string                  `json:"tags"`
	Categories      []string                  `json:"categories"`
	Hierarchical    bool                      `json:"hierarchical"`
	ResourceType    int16                     `json:"resource_type"`
	DownloadURL     string                    `json:"download_url"`
	AttachedFile    []byte                    `json:"attached_file"`
	CreatorIsAuthor bool                      `json:"creator_is_author"`
	Author          string                    `json:"author"`
	CreationDate    *time.Time                `json:"creation_date"`
	PublishInHome   bool                      `json:"publish_in_home"`
	Visibility      domain.ResourceVisibility `json:"visibility" validate:"min=0,max=3"`
	Editors         []domain.ReaderEditor     `json:"editors"`
	Readers         []domain.ReaderEditor     `json:"readers"`
}

type attachedFileRequest struct {
	Property string                  `json:"property" validate:"required"`
	Type     domain.AttachedFileType `json:"type" validate:"min=0,max=2"`
	Content  []byte                  `json:"content"`
}

type complexResourceRequest struct {
	ID              uuid.UUID                 `json:"id"`
	Title           string                    `json:"title" validate:"required"`
	Description     string                    `json:"description"`
	Tags            []string                  `json:"tags"`
	Categories      []string                  `json:"categories"`
	OntologyURL     string                    `json:"ontology_url" validate:"required"`
	RDF             []byte                    `json:"rdf" validate:"required"`
	AttachedFiles   []attachedFileRequest     `json:"attached_files" validate:"dive"`
	CreatorIsAuthor bool                      `json:"creator_is_author"`
	Author          string                    `json:"author"`
	PublisherEmail  string                    `json:"publisher_email" validate:"omitempty,email"`
	PublishInHome   bool                      `json:"publish_in_home"`
	MainImage       string                    `json:"main_image"`
	Visibility      domain.ResourceVisibility `json:"visibility" validate:"min=0,max=3"`
	Editors         []domain.ReaderEditor     `json:"editors"`
	Readers         []domain.ReaderEditor     `json:"readers"`
	CreateVersion   bool                      `json:"create_version"`
}

type complexBatchRequest struct {
	Hierarchical bool                     `json:"hierarchical"`
	Attempts     int                      `json:"attempts" validate:"min=0,max=20"`
	Resources    []complexResourceRequest `json:"resources" validate:"required,min=1,dive"`
}

type deleteBatchRequest struct {
	IDs            []uuid.UUID `json:"ids" validate:"required,min=1"`
	Persistent     bool        `json:"persistent"`
	DeleteAttached bool        `json:"delete_attached"`
	Attempts       int         `json:"attempts" validate:"min=0,max=20"`
}

type tripleRequest struct {
	Predicate   string `json:"predicate" validate:"required"`
	Value       string `json:"value"`
	OldValue    string `json:"old_value"`
	NewValue    string `json:"new_value"`
	Title       bool   `json:"title"`
	Description bool   `json:"description"`
}

type resourceTriplesRequest struct {
	ResourceID uuid.UUID       `json:"resource_id" validate:"required"`
	Triples    []tripleRequest `json:"triples" validate:"required,min=1,dive"`
}

type propertiesBatchRequest struct {
	Action      string                   `json:"action" validate:"required,oneof=insert delete modify"`
	PublishHome bool                     `json:"publish_home"`
	Attempts    int                      `json:"attempts" validate:"min=0,max=20"`
	Resources   []resourceTriplesRequest `json:"resources" validate:"required,min=1,dive"`
}

func NewResourceHandler(service ResourceBatchService, logger *slog.Logger) *ResourceHandler {
	return &ResourceHandler{service: service, logger: logger}
}

func (h *ResourceHandler) Register(router fiber.Router) {
	router.Post("/resources/basic", h.HandleCreateBasic)
	router.Post("/resources/complex/batch", h.HandleLoadComplex)
	router.Post("/resources/delete/batch", h.HandleDelete)
	router.Post("/resources/properties/batch", h.HandleProperties)
}

func (h *ResourceHandler) HandleCreateBasic(c fiber.Ctx) error {
	var requestBody basicResourceRequest
	if ok, err := bindRequest(c, &requestBody); !ok {
		return err
	}

	resource := domain.BasicOntologyResource{
		Title:           requestBody.Title,
		Description:     requestBody.Description,
		Tags:            requestBody.Tags,
		TextCategories:  requestBody.Categories,
		ResourceType:    requestBody.ResourceType,
		DownloadURL:     requestBody.DownloadURL,
		AttachedFile:    requestBody.AttachedFile,
		CreatorIsAuthor: requestBody.CreatorIsAuthor,
		Author:          requestBody.Author,
		CreationDate:    requestBody.CreationDate,
		PublishInHome:   requestBody.PublishInHome,
		Visibility:      requestBody.Visibility,
		Editors:         requestBody.Editors,
		Readers:         requestBody.Readers,
	}

	id, err := h.service.CreateBasicResource(c.Context(), resource, requestBody.Hierarchical)
	if err != nil {
		return respondError(c, h.logger, "create basic resource", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"resource_id": id})
}

func (h *ResourceHandler) HandleLoadComplex(c fiber.Ctx) error {
	var requestBody complexBatchRequest
	if ok, err := bindRequest(c, &requestBody); !ok {
		return err
	}

	resources := make([]domain.ComplexOntologyResource, 0, len(requestBody.Resources))
	for _, r := range requestBody.Resources {
		files := make([]domain.AttachedFile, 0, len(r.AttachedFiles))
		for _, f := range r.AttachedFiles {
			files = append(files, domain.AttachedFile{Property: f.Property, Type: f.Type, Content: f.Content})
		}

		resources = append(resources, domain.ComplexOntologyResource{
			ID:              r.ID,
			Title:           r.Title,
			Description:     r.Description,
			Tags:            r.Tags,
			TextCategories:  r.Categories,
			OntologyURL:     r.OntologyURL,
			RDFFile:         r.RDF,
			AttachedFiles:   files,
			CreatorIsAuthor: r.CreatorIsAuthor,
			Author:          r.Author,
			PublisherEmail:  r.PublisherEmail,
			PublishInHome:   r.PublishInHome,
			MainImage:       r.MainImage,
			Visibility:      r.Visibility,
			Editors:         r.Editors,
			Readers:         r.Readers,
			CreateVersion:   r.CreateVersion,
		})
	}

	report := h.service.LoadComplexResources(c.Context(), resources, requestBody.Hierarchical, requestBody.Attempts)
	return c.Status(reportStatus(report)).JSON(report)
}

func (h *ResourceHandler) HandleDelete(c fiber.Ctx) error {
	var requestBody deleteBatchRequest
	if ok, err := bindRequest(c, &requestBody); !ok {
		return err
	}

	var report vo.BatchReport
	if requestBody.Persistent {
		report = h.service.PersistentDeleteResources(c.Context(), requestBody.IDs, requestBody.DeleteAttached, requestBody.Attempts)
	} else {
		report = h.service.DeleteResources(c.Context(), requestBody.IDs, requestBody.Attempts)
	}

	return c.Status(reportStatus(report)).JSON(report)
}

func (h *ResourceHandler) HandleProperties(c fiber.Ctx) error {
	var requestBody propertiesBatchRequest
	if ok, err := bindRequest(c, &requestBody); !ok {
		return err
	}

	var report vo.BatchReport
	switch requestBody.Action {
	case "insert":
		triples := make(map[uuid.UUID][]domain.TriplesToInclude, len(requestBody.Resources))
		for _, r := range requestBody.Resources {
			for _, t := range r.Triples {
				triples[r.ResourceID] = append(triples[r.ResourceID], domain.TriplesToInclude{
					Predicate: t.Predicate, NewValue: t.NewValue, Title: t.Title, Description: t.Description,
				})
			}
		}
		report = h.service.InsertProperties(c.Context(), triples, requestBody.PublishHome, requestBody.Attempts)
	case "delete":
		triples := make(map[uuid.UUID][]domain.RemoveTriples, len(requestBody.Resources))
		for _, r := range requestBody.Resources {
			for _, t := range r.Triples {
				triples[r.ResourceID] = append(triples[r.ResourceID], domain.RemoveTriples{
					Predicate: t.Predicate, Value: t.Value, Title: t.Title, Description: t.Description,
				})
			}
		}
		report = h.service.DeleteProperties(c.Context(), triples, requestBody.PublishHome, requestBody.Attempts)
	default:
		triples := make(map[uuid.UUID][]domain.TriplesToModify, len(requestBody.Resources))
		for _, r := range requestBody.Resources {
			for _, t := range r.Triples {
				triples[r.ResourceID] = append(triples[r.ResourceID], domain.TriplesToModify{
					Predicate: t.Predicate, OldValue: t.OldValue, NewValue: t.NewValue, Title: t.Title, Description: t.Description,
				})
			}
		}
		report = h.service.ModifyProperties(c.Context(), triples, requestBody.PublishHome, requestBody.Attempts)
	}

	return c.Status(reportStatus(report)).JSON(report)
}

// reportStatus is 200 when every item succeeded and 207 otherwise.
func reportStatus(report vo.BatchReport) int {
	if len(report.Failed) > 0 {
		return fiber.StatusMultiStatus
	}
	return fiber.StatusOK
}
