package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
	"github.com/joshuarp/gnoss-api-wrapper/internal/gnoss"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/uid"
)

const DefaultMaxResourcesPerPackage = 1000

type MassiveLoadGateway interface {
	CreateMassiveLoad(ctx context.Context, params vo.MassiveLoadParams) error
	SendPackage(ctx context.Context, params vo.MassiveLoadPackageParams) error
	CloseMassiveLoad(ctx context.Context, loadID uuid.UUID) error
}

type MassiveLoadJournalRepository interface {
	CreateLoad(ctx context.Context, load domain.MassiveLoad) error
	RecordPackage(ctx context.Context, pkg domain.LoadPackage) error
	UpdateLoadState(ctx context.Context, id uuid.UUID, state domain.MassiveLoadState, at time.Time) error
}

type MassiveLoadOptions struct {
	// Dir is where package files are staged.
	Dir string

	// PublicURL is the address GNOSS downloads the files of Dir from.
	PublicURL string

	MaxResourcesPerPackage int
}

// MassiveLoadService stages resources as N-Quads and relational files and
// hands them to GNOSS package by package.
type MassiveLoadService struct {
	gateway   MassiveLoadGateway
	journal   MassiveLoadJournalRepository
	ids       uid.UIDGenerator
	community string
	opts      MassiveLoadOptions
	logger    *slog.Logger
	now       func() time.Time

	mu    sync.Mutex
	loads map[uuid.UUID]*stagedLoad
}

type stagedLoad struct {
	mu        sync.Mutex
	load      domain.MassiveLoad
	packages  map[string]*openPackage
	sent      int
	resources int
}

// openPackage is the package of one ontology currently being filled.
type openPackage struct {
	ontologyURL string
	name        string
	sequence    int
	resources   int
}

func NewMassiveLoadService(
	gateway MassiveLoadGateway,
	journal MassiveLoadJournalRepository,
	ids uid.UIDGenerator,
	creds domain.Credentials,
	opts MassiveLoadOptions,
	logger *slog.Logger,
) (*MassiveLoadService, error) {
	if strings.TrimSpace(opts.Dir) == "" {
		return nil, vo.NewConfigurationError("massive_load.dir", "")
	}
	if strings.TrimSpace(opts.PublicURL) == "" {
		return nil, vo.NewConfigurationError("massive_load.public_url", "")
	}
	if opts.MaxResourcesPerPackage <= 0 {
		opts.MaxResourcesPerPackage = DefaultMaxResourcesPerPackage
	}
	opts.PublicURL = strings.TrimRight(opts.PublicURL, "/")
	if logger == nil {
		logger = slog.Default()
	}

	return &MassiveLoadService{
		gateway:   gateway,
		journal:   journal,
		ids:       ids,
		community: creds.CommunityShortName,
		opts:      opts,
		logger:    logger,
		now:       time.Now,
		loads:     make(map[uuid.UUID]*stagedLoad),
	}, nil
}

// Create opens a load on GNOSS and starts staging for it.
func (s *MassiveLoadService) Create(ctx context.Context, name string, organizationID uuid.UUID) (domain.MassiveLoad, error) {
	if strings.TrimSpace(name) == "" {
		return domain.MassiveLoad{}, vo.NewInvalidArgumentError("name", "is required")
	}
	if organizationID == uuid.Nil {
		organizationID = domain.DefaultOrganizationID
	}

	if err := os.MkdirAll(s.opts.Dir, 0o755); err != nil {
		return domain.MassiveLoad{}, fmt.Errorf("service: failed to create staging directory: %w", err)
	}

	loadID, err := uid.NewUUID(ctx, s.ids)
	if err != nil {
		return domain.MassiveLoad{}, fmt.Errorf("service: failed to generate load id: %w", err)
	}

	if err := s.gateway.CreateMassiveLoad(ctx, vo.MassiveLoadParams{
		LoadID:         loadID,
		Name:           name,
		CommunityName:  s.community,
		OrganizationID: organizationID,
	}); err != nil {
		s.logger.Error("massive load not created", "load_id", loadID, "name", name, "error", err)
		return domain.MassiveLoad{}, err
	}

	load := domain.MassiveLoad{
		ID:             loadID,
		Name:           name,
		Community:      s.community,
		OrganizationID: organizationID,
		State:          domain.MassiveLoadOpen,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.journal.CreateLoad(ctx, load); err != nil {
		s.logger.Error("failed to journal massive load", "load_id", loadID, "error", err)
	}

	s.mu.Lock()
	s.loads[loadID] = &stagedLoad{load: load, packages: make(map[string]*openPackage)}
	s.mu.Unlock()

	s.logger.Info("massive load created", "load_id", loadID, "name", name)
	return load, nil
}

// AddResource stages one resource in the open package of its ontology. A
// full package is sent when the next resource of its ontology arrives, so
// Close always holds a package to flag as the last one.
func (s *MassiveLoadService) AddResource(ctx context.Context, loadID uuid.UUID, ontologyURL string, resource domain.MassiveResource) error {
	name := gnoss.OntologyNameFromURL(ontologyURL)
	if name == "" {
		return vo.NewInvalidArgumentError("ontology", "is required")
	}
	if resource.ID == uuid.Nil {
		return vo.NewInvalidArgumentError("resource.id", "is required")
	}

	staged, err := s.staged(loadID)
	if err != nil {
		return err
	}

	staged.mu.Lock()
	defer staged.mu.Unlock()

	if staged.load.State != domain.MassiveLoadOpen {
		return vo.ErrMassiveLoadClosed
	}

	pkg, ok := staged.packages[name]
	if !ok {
		pkg = &openPackage{ontologyURL: ontologyURL, name: name}
		staged.packages[name] = pkg
	}

	if pkg.resources >= s.opts.MaxResourcesPerPackage {
		if err := s.sendPackage(ctx, staged, pkg, false); err != nil {
			return err
		}
		pkg.sequence++
		pkg.resources = 0
	}

	if err := s.appendResource(loadID, pkg, resource); err != nil {
		return err
	}
	pkg.resources++
	staged.resources++
	return nil
}

// Close sends every package still holding resources, the last one flagged
// as such, and closes the load on GNOSS.
func (s *MassiveLoadService) Close(ctx context.Context, loadID uuid.UUID) (vo.MassiveLoadStatus, error) {
	staged, err := s.staged(loadID)
	if err != nil {
		return vo.MassiveLoadStatus{}, err
	}

	staged.mu.Lock()
	defer staged.mu.Unlock()

	if staged.load.State != domain.MassiveLoadOpen {
		return vo.MassiveLoadStatus{}, vo.ErrMassiveLoadClosed
	}

	pending := make([]*openPackage, 0, len(staged.packages))
	for _, name := range sortedKeys(staged.packages) {
		if pkg := staged.packages[name]; pkg.resources > 0 {
			pending = append(pending, pkg)
		}
	}
	if len(pending) == 0 {
		s.logger.Warn("massive load closed without resources", "load_id", loadID)
	}
	for i, pkg := range pending {
		if err := s.sendPackage(ctx, staged, pkg, i == len(pending)-1); err != nil {
			return vo.MassiveLoadStatus{}, err
		}
		pkg.sequence++
		pkg.resources = 0
	}

	if err := s.gateway.CloseMassiveLoad(ctx, loadID); err != nil {
		s.logger.Error("massive load not closed", "load_id", loadID, "error", err)
		return vo.MassiveLoadStatus{}, err
	}

	closedAt := s.now().UTC()
	staged.load.State = domain.MassiveLoadClosed
	staged.load.ClosedAt = &closedAt
	if err := s.journal.UpdateLoadState(ctx, loadID, domain.MassiveLoadClosed, closedAt); err != nil {
		s.logger.Error("failed to journal massive load state", "load_id", loadID, "error", err)
	}

	s.logger.Info("massive load closed", "load_id", loadID, "packages", staged.sent, "resources", staged.resources)
	return statusOf(staged), nil
}

func (s *MassiveLoadService) Status(loadID uuid.UUID) (vo.MassiveLoadStatus, error) {
	staged, err := s.staged(loadID)
	if err != nil {
		return vo.MassiveLoadStatus{}, err
	}

	staged.mu.Lock()
	defer staged.mu.Unlock()
	return statusOf(staged), nil
}

func (s *MassiveLoadService) staged(loadID uuid.UUID) (*stagedLoad, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged, ok := s.loads[loadID]
	if !ok {
		return nil, vo.ErrMassiveLoadNotFound
	}
	return staged, nil
}

func (s *MassiveLoadService) appendResource(loadID uuid.UUID, pkg *openPackage, resource domain.MassiveResource) error {
	files := packageFiles(pkg.name, loadID, pkg.sequence)

	if err := appendLines(filepath.Join(s.opts.Dir, files.ontology), resource.OntologyTriples); err != nil {
		return err
	}
	if err := appendLines(filepath.Join(s.opts.Dir, files.search), resource.SearchTriples); err != nil {
		return err
	}
	return appendLines(filepath.Join(s.opts.Dir, files.acid), []string{resource.ID.String() + "|||" + resource.AcidValue})
}

func (s *MassiveLoadService) sendPackage(ctx context.Context, staged *stagedLoad, pkg *openPackage, isLast bool) error {
	packageID, err := uid.NewUUID(ctx, s.ids)
	if err != nil {
		return fmt.Errorf("service: failed to generate package id: %w", err)
	}

	files := packageFiles(pkg.name, staged.load.ID, pkg.sequence)
	params := vo.MassiveLoadPackageParams{
		PackageID:    packageID,
		LoadID:       staged.load.ID,
		OntologyRute: s.opts.PublicURL + "/" + files.ontology,
		SearchRute:   s.opts.PublicURL + "/" + files.search,
		SQLRute:      s.opts.PublicURL + "/" + files.acid,
		Ontology:     pkg.ontologyURL,
		IsLast:       isLast,
	}
	if err := s.gateway.SendPackage(ctx, params); err != nil {
		s.logger.Error("massive load package not sent", "load_id", staged.load.ID, "package_id", packageID, "error", err)
		return err
	}
	staged.sent++

	if err := s.journal.RecordPackage(ctx, domain.LoadPackage{
		ID:           packageID,
		LoadID:       staged.load.ID,
		Ontology:     pkg.ontologyURL,
		Sequence:     pkg.sequence,
		OntologyPath: params.OntologyRute,
		SearchPath:   params.SearchRute,
		AcidPath:     params.SQLRute,
		IsLast:       isLast,
		Resources:    pkg.resources,
	}); err != nil {
		s.logger.Error("failed to journal massive load package", "package_id", packageID, "error", err)
	}

	s.logger.Debug("massive load package sent", "load_id", staged.load.ID, "package_id", packageID, "ontology", pkg.name, "sequence", pkg.sequence, "is_last", isLast)
	return nil
}

type stagedFiles struct {
	ontology string
	search   string
	acid     string
}

func packageFiles(ontology string, loadID uuid.UUID, sequence int) stagedFiles {
	return stagedFiles{
		ontology: fmt.Sprintf("%s_%s_%d.nq", ontology, loadID, sequence),
		search:   fmt.Sprintf("%s_search_%s_%d.nq", ontology, loadID, sequence),
		acid:     fmt.Sprintf("%s_acid_%s_%d.txt", ontology, loadID, sequence),
	}
}

func appendLines(path string, lines []string) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("service: failed to open staging file: %w", err)
	}

	var writeErr error
	for _, line := range lines {
		if _, writeErr = file.WriteString(line + "\n"); writeErr != nil {
			break
		}
	}

	closeErr := file.Close()
	if err := errors.Join(writeErr, closeErr); err != nil {
		return fmt.Errorf("service: failed to write staging file %s: %w", filepath.Base(path), err)
	}
	return nil
}

func statusOf(staged *stagedLoad) vo.MassiveLoadStatus {
	return vo.MassiveLoadStatus{
		LoadID:    staged.load.ID,
		Name:      staged.load.Name,
		State:     string(staged.load.State),
		Packages:  staged.sent,
		Resources: staged.resources,
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
