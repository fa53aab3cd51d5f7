package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
	"github.com/joshuarp/gnoss-api-wrapper/internal/gnoss"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/batch"
)

// DefaultLoadAttempts is the lap ceiling of resource loads.
const DefaultLoadAttempts = 5

type ResourceGateway interface {
	CreateComplexOntologyResource(ctx context.Context, params vo.LoadResourceParams) (string, error)
	CreateBasicOntologyResource(ctx context.Context, params vo.LoadResourceParams) (string, error)
	Delete(ctx context.Context, params vo.DeleteParams) error
	PersistentDelete(ctx context.Context, params vo.PersistentDeleteParams) error
	ModifyTripleList(ctx context.Context, params vo.ModifyResourceTripleListParams) error
}

type LoadRegistrar interface {
	RegisterLoad(ctx context.Context, loadID, community string) error
}

type CategoryIDResolver interface {
	ResolveCategoryIDs(ctx context.Context, names []string, hierarchical bool, community string) ([]uuid.UUID, error)
}

type ResourceJournalRepository interface {
	RecordResourceOutcomes(ctx context.Context, records []domain.ResourceLoadRecord) error
}

type ResourceBatchOptions struct {
	// RDFArchivePath enables a local copy of every loaded RDF file.
	RDFArchivePath string

	// Pause is waited between retry laps.
	Pause time.Duration
}

// ResourceBatchService runs resource operations over many resources with
// the batch retry loop.
type ResourceBatchService struct {
	resources  ResourceGateway
	registrar  LoadRegistrar
	categories CategoryIDResolver
	journal    ResourceJournalRepository
	creds      domain.Credentials
	opts       ResourceBatchOptions
	logger     *slog.Logger
	now        func() time.Time

	loadMu     sync.Mutex
	loadID     string
	registered bool
}

// NewResourceBatchService accepts a nil journal.
func NewResourceBatchService(
	resources ResourceGateway,
	registrar LoadRegistrar,
	categories CategoryIDResolver,
	journal ResourceJournalRepository,
	creds domain.Credentials,
	opts ResourceBatchOptions,
	logger *slog.Logger,
) *ResourceBatchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResourceBatchService{
		resources:  resources,
		registrar:  registrar,
		categories: categories,
		journal:    journal,
		creds:      creds,
		opts:       opts,
		logger:     logger,
		now:        time.Now,
	}
}

// LoadIdentifier returns the load id shared by every call of this service.
// It is registered with the community the first time a developer email is
// available; a failed registration is retried on the next call.
func (s *ResourceBatchService) LoadIdentifier(ctx context.Context) string {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	if s.loadID == "" {
		s.loadID = gnoss.NewLoadIdentifier(s.creds.CommunityShortName, s.now())
	}

	if !s.registered && s.creds.DeveloperEmail != "" && s.registrar != nil {
		if err := s.registrar.RegisterLoad(ctx, s.loadID, s.creds.CommunityShortName); err != nil {
			s.logger.Warn("load registration failed", "load_id", s.loadID, "error", err)
		} else {
			s.registered = true
		}
	}
	return s.loadID
}

func (s *ResourceBatchService) LoadComplexResources(ctx context.Context, resources []domain.ComplexOntologyResource, hierarchical bool, attempts int) vo.BatchReport {
	if attempts <= 0 {
		attempts = DefaultLoadAttempts
	}
	resources = withComplexIDs(resources)
	loadID := s.LoadIdentifier(ctx)

	outcome := batch.Run(ctx, resources, batch.Options[domain.ComplexOntologyResource, uuid.UUID]{
		Name:        "load complex resources",
		MaxAttempts: attempts,
		Key:         func(r domain.ComplexOntologyResource) uuid.UUID { return r.ID },
		Pause:       s.opts.Pause,
		Logger:      s.logger,
	}, func(ctx context.Context, resource domain.ComplexOntologyResource, isLast bool) error {
		categoryIDs, err := s.categories.ResolveCategoryIDs(ctx, resource.TextCategories, hierarchical, s.creds.CommunityShortName)
		if err != nil {
			return err
		}

		params := gnoss.BuildComplexResourceParams(resource, gnoss.LoadContext{
			Community:   s.creds.CommunityShortName,
			CategoryIDs: categoryIDs,
			LoadID:      loadID,
			EndOfLoad:   isLast,
		})
		if _, err := s.resources.CreateComplexOntologyResource(ctx, params); err != nil {
			return err
		}

		s.archiveRDF(resource)
		return nil
	})

	return s.finish(ctx, outcome, loadID, domain.OperationLoadComplex)
}

func (s *ResourceBatchService) LoadBasicResources(ctx context.Context, resources []domain.BasicOntologyResource, hierarchical bool, attempts int) vo.BatchReport {
	if attempts <= 0 {
		attempts = DefaultLoadAttempts
	}
	resources = withBasicIDs(resources)
	loadID := s.LoadIdentifier(ctx)

	outcome := batch.Run(ctx, resources, batch.Options[domain.BasicOntologyResource, uuid.UUID]{
		Name:        "load basic resources",
		MaxAttempts: attempts,
		Key:         func(r domain.BasicOntologyResource) uuid.UUID { return r.ID },
		Pause:       s.opts.Pause,
		Logger:      s.logger,
	}, func(ctx context.Context, resource domain.BasicOntologyResource, isLast bool) error {
		categoryIDs, err := s.categories.ResolveCategoryIDs(ctx, resource.TextCategories, hierarchical, s.creds.CommunityShortName)
		if err != nil {
			return err
		}

		params := gnoss.BuildBasicResourceParams(resource, gnoss.LoadContext{
			Community:   s.creds.CommunityShortName,
			CategoryIDs: categoryIDs,
			LoadID:      loadID,
			EndOfLoad:   isLast,
		})
		_, err = s.resources.CreateBasicOntologyResource(ctx, params)
		return err
	})

	return s.finish(ctx, outcome, loadID, domain.OperationLoadBasic)
}

// CreateBasicResource loads one basic resource outside any batch and returns
// the id assigned by GNOSS. The call ends the load.
func (s *ResourceBatchService) CreateBasicResource(ctx context.Context, resource domain.BasicOntologyResource, hierarchical bool) (string, error) {
	if resource.ID == uuid.Nil {
		resource.ID = uuid.New()
	}

	categoryIDs, err := s.categories.ResolveCategoryIDs(ctx, resource.TextCategories, hierarchical, s.creds.CommunityShortName)
	if err != nil {
		return "", err
	}

	loadID := s.LoadIdentifier(ctx)
	params := gnoss.BuildBasicResourceParams(resource, gnoss.LoadContext{
		Community:   s.creds.CommunityShortName,
		CategoryIDs: categoryIDs,
		LoadID:      loadID,
		EndOfLoad:   true,
	})

	id, err := s.resources.CreateBasicOntologyResource(ctx, params)
	record := domain.ResourceLoadRecord{
		LoadID:     loadID,
		ResourceID: resource.ID,
		Operation:  domain.OperationLoadBasic,
		Succeeded:  err == nil,
		Attempts:   1,
		RecordedAt: s.now().UTC(),
	}
	if err != nil {
		record.Error = err.Error()
	}
	s.journalRecords(ctx, []domain.ResourceLoadRecord{record})

	if err != nil {
		return "", fmt.Errorf("service: failed to create basic resource: %w", err)
	}
	return id, nil
}

func (s *ResourceBatchService) DeleteResources(ctx context.Context, ids []uuid.UUID, attempts int) vo.BatchReport {
	loadID := s.LoadIdentifier(ctx)

	outcome := batch.Run(ctx, ids, s.idOptions("delete resources", attempts), func(ctx context.Context, id uuid.UUID, isLast bool) error {
		return s.resources.Delete(ctx, vo.DeleteParams{
			ResourceID:         id,
			CommunityShortName: s.creds.CommunityShortName,
			ChargeID:           loadID,
			EndOfLoad:          isLast,
		})
	})

	return s.finish(ctx, outcome, loadID, domain.OperationDelete)
}

func (s *ResourceBatchService) PersistentDeleteResources(ctx context.Context, ids []uuid.UUID, deleteAttached bool, attempts int) vo.BatchReport {
	loadID := s.LoadIdentifier(ctx)

	outcome := batch.Run(ctx, ids, s.idOptions("persistent delete resources", attempts), func(ctx context.Context, id uuid.UUID, isLast bool) error {
		return s.resources.PersistentDelete(ctx, vo.PersistentDeleteParams{
			ResourceID:         id,
			CommunityShortName: s.creds.CommunityShortName,
			DeleteAttached:     deleteAttached,
			EndOfLoad:          isLast,
		})
	})

	return s.finish(ctx, outcome, loadID, domain.OperationPersistentDelete)
}

func (s *ResourceBatchService) InsertProperties(ctx context.Context, triples map[uuid.UUID][]domain.TriplesToInclude, publishHome bool, attempts int) vo.BatchReport {
	edits := make(map[uuid.UUID][]vo.ModifyResourceTriple, len(triples))
	for id, list := range triples {
		edits[id] = gnoss.IncludeTriples(list)
	}
	return s.modifyTriples(ctx, "insert properties", domain.OperationInsertProperties, edits, publishHome, attempts)
}

func (s *ResourceBatchService) DeleteProperties(ctx context.Context, triples map[uuid.UUID][]domain.RemoveTriples, publishHome bool, attempts int) vo.BatchReport {
	edits := make(map[uuid.UUID][]vo.ModifyResourceTriple, len(triples))
	for id, list := range triples {
		edits[id] = gnoss.RemovalTriples(list)
	}
	return s.modifyTriples(ctx, "delete properties", domain.OperationDeleteProperties, edits, publishHome, attempts)
}

func (s *ResourceBatchService) ModifyProperties(ctx context.Context, triples map[uuid.UUID][]domain.TriplesToModify, publishHome bool, attempts int) vo.BatchReport {
	edits := make(map[uuid.UUID][]vo.ModifyResourceTriple, len(triples))
	for id, list := range triples {
		edits[id] = gnoss.ModificationTriples(list)
	}
	return s.modifyTriples(ctx, "modify properties", domain.OperationModifyProperties, edits, publishHome, attempts)
}

func (s *ResourceBatchService) modifyTriples(
	ctx context.Context,
	name string,
	operation domain.ResourceOperation,
	edits map[uuid.UUID][]vo.ModifyResourceTriple,
	publishHome bool,
	attempts int,
) vo.BatchReport {
	loadID := s.LoadIdentifier(ctx)

	outcome := batch.Run(ctx, sortedIDs(edits), s.idOptions(name, attempts), func(ctx context.Context, id uuid.UUID, isLast bool) error {
		return s.resources.ModifyTripleList(ctx, gnoss.BuildTripleListParams(id, edits[id], publishHome, gnoss.LoadContext{
			Community: s.creds.CommunityShortName,
			LoadID:    loadID,
			EndOfLoad: isLast,
		}))
	})

	return s.finish(ctx, outcome, loadID, operation)
}

func (s *ResourceBatchService) idOptions(name string, attempts int) batch.Options[uuid.UUID, uuid.UUID] {
	if attempts <= 0 {
		attempts = DefaultLoadAttempts
	}
	return batch.Options[uuid.UUID, uuid.UUID]{
		Name:        name,
		MaxAttempts: attempts,
		Key:         func(id uuid.UUID) uuid.UUID { return id },
		Pause:       s.opts.Pause,
		Logger:      s.logger,
	}
}

// finish journals the outcome and turns it into a report.
func (s *ResourceBatchService) finish(ctx context.Context, outcome batch.Outcome[uuid.UUID], loadID string, operation domain.ResourceOperation) vo.BatchReport {
	report := vo.BatchReport{
		Total:     len(outcome.Keys()),
		Succeeded: outcome.Succeeded(),
		Failed:    outcome.Failed(),
	}

	recordedAt := s.now().UTC()
	records := make([]domain.ResourceLoadRecord, 0, report.Total)
	for _, id := range outcome.Keys() {
		result, _ := outcome.Result(id)
		record := domain.ResourceLoadRecord{
			LoadID:     loadID,
			ResourceID: id,
			Operation:  operation,
			Succeeded:  result.Succeeded,
			Attempts:   result.Attempts,
			RecordedAt: recordedAt,
		}
		if result.Err != nil {
			record.Error = result.Err.Error()
			if report.Errors == nil {
				report.Errors = make(map[uuid.UUID]string)
			}
			report.Errors[id] = result.Err.Error()
		}
		records = append(records, record)
	}

	s.journalRecords(ctx, records)
	return report
}

func (s *ResourceBatchService) journalRecords(ctx context.Context, records []domain.ResourceLoadRecord) {
	if s.journal == nil || len(records) == 0 {
		return
	}

	// The journal must not lose the outcome of an already cancelled request.
	if err := s.journal.RecordResourceOutcomes(context.WithoutCancel(ctx), records); err != nil {
		s.logger.Error("failed to journal resource outcomes", "operation", records[0].Operation, "load_id", records[0].LoadID, "error", err)
	}
}

// archiveRDF keeps a local copy at {path}/{ontology}/{id}.rdf. Existing copies
// are left untouched.
func (s *ResourceBatchService) archiveRDF(resource domain.ComplexOntologyResource) {
	if s.opts.RDFArchivePath == "" || len(resource.RDFFile) == 0 {
		return
	}

	dir := filepath.Join(s.opts.RDFArchivePath, gnoss.OntologyNameFromURL(resource.OntologyURL))
	target := filepath.Join(dir, resource.ID.String()+".rdf")

	if err := writeIfAbsent(dir, target, resource.RDFFile); err != nil {
		s.logger.Warn("rdf archive failed", "resource_id", resource.ID, "path", target, "error", err)
	}
}

func writeIfAbsent(dir, target string, content []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("service: failed to create archive directory: %w", err)
	}

	file, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil
		}
		return fmt.Errorf("service: failed to create archive file: %w", err)
	}

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return fmt.Errorf("service: failed to write archive file: %w", err)
	}
	return file.Close()
}

func withComplexIDs(resources []domain.ComplexOntologyResource) []domain.ComplexOntologyResource {
	out := append([]domain.ComplexOntologyResource(nil), resources...)
	for i := range out {
		if out[i].ID == uuid.Nil {
			out[i].ID = uuid.New()
		}
	}
	return out
}

func withBasicIDs(resources []domain.BasicOntologyResource) []domain.BasicOntologyResource {
	out := append([]domain.BasicOntologyResource(nil), resources...)
	for i := range out {
		if out[i].ID == uuid.Nil {
			out[i].ID = uuid.New()
		}
	}
	return out
}

// sortedIDs gives map-driven batches a stable order.
func sortedIDs[V any](m map[uuid.UUID]V) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
	return ids
}
