package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
	servicemocks "github.com/joshuarp/gnoss-api-wrapper/internal/mock/services"
	uidmocks "github.com/joshuarp/gnoss-api-wrapper/internal/mock/shared/uid"
)

const (
	bookOntology    = "http://gnoss.com/book.owl"
	articleOntology = "http://gnoss.com/article.owl"
	publicURL       = "https://files.example.com/loads"
)

type MassiveLoadServiceSuite struct {
	suite.Suite

	gateway *servicemocks.MassiveLoadGateway
	journal *servicemocks.MassiveLoadJournalRepository
	ids     *uidmocks.UIDGenerator
	dir     string
	service *MassiveLoadService
}

func (s *MassiveLoadServiceSuite) SetupTest() {
	s.gateway = servicemocks.NewMassiveLoadGateway(s.T())
	s.journal = servicemocks.NewMassiveLoadJournalRepository(s.T())
	s.ids = uidmocks.NewUIDGenerator(s.T())
	s.ids.EXPECT().Generate(mock.Anything).RunAndReturn(func(context.Context) (string, error) {
		return uuid.NewString(), nil
	}).Maybe()
	s.dir = filepath.Join(s.T().TempDir(), "staging")

	service, err := NewMassiveLoadService(s.gateway, s.journal, s.ids, domain.Credentials{CommunityShortName: "demo"}, MassiveLoadOptions{
		Dir:                    s.dir,
		PublicURL:              publicURL + "/",
		MaxResourcesPerPackage: 2,
	}, nil)
	s.Require().NoError(err)
	s.service = service
}

func (s *MassiveLoadServiceSuite) create() domain.MassiveLoad {
	s.gateway.EXPECT().CreateMassiveLoad(mock.Anything, mock.MatchedBy(func(params vo.MassiveLoadParams) bool {
		return params.Name == "nightly" && params.CommunityName == "demo" && params.OrganizationID == domain.DefaultOrganizationID
	})).Return(nil)
	s.journal.EXPECT().CreateLoad(mock.Anything, mock.Anything).Return(nil)

	load, err := s.service.Create(context.Background(), "nightly", uuid.Nil)
	s.Require().NoError(err)
	return load
}

func resourceFor(title string) domain.MassiveResource {
	id := uuid.New()
	subject := "<http://gnoss.com/items/" + id.String() + ">"
	return domain.MassiveResource{
		ID:              id,
		OntologyTriples: []string{subject + ` <http://schema.org/name> "` + title + `" .`},
		SearchTriples:   []string{subject + ` <http://gnoss/search> "` + strings.ToLower(title) + `" .`},
		AcidValue:       title,
	}
}

func (s *MassiveLoadServiceSuite) TestCreate() {
	load := s.create()

	assert.NotEqual(s.T(), uuid.Nil, load.ID)
	assert.Equal(s.T(), domain.MassiveLoadOpen, load.State)
	assert.Equal(s.T(), "demo", load.Community)
	assert.DirExists(s.T(), s.dir)
}

func (s *MassiveLoadServiceSuite) TestCreate_RequiresName() {
	_, err := s.service.Create(context.Background(), " ", uuid.Nil)
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, vo.ErrInvalidArgument)
}

func (s *MassiveLoadServiceSuite) TestAddResource_SendsFullPackages() {
	load := s.create()
	var packages []vo.MassiveLoadPackageParams

	s.gateway.EXPECT().SendPackage(mock.Anything, mock.Anything).
		Run(func(_ context.Context, params vo.MassiveLoadPackageParams) { packages = append(packages, params) }).
		Return(nil)
	s.journal.EXPECT().RecordPackage(mock.Anything, mock.Anything).Return(nil)

	first, second, third := resourceFor("Dune"), resourceFor("Emma"), resourceFor("Ulysses")
	for _, resource := range []domain.MassiveResource{first, second, third} {
		require.NoError(s.T(), s.service.AddResource(context.Background(), load.ID, bookOntology, resource))
	}

	require.Len(s.T(), packages, 1)
	assert.False(s.T(), packages[0].IsLast)
	assert.Equal(s.T(), bookOntology, packages[0].Ontology)
	assert.Equal(s.T(), load.ID, packages[0].LoadID)
	assert.Equal(s.T(), publicURL+"/book_"+load.ID.String()+"_0.nq", packages[0].OntologyRute)
	assert.Equal(s.T(), publicURL+"/book_search_"+load.ID.String()+"_0.nq", packages[0].SearchRute)
	assert.Equal(s.T(), publicURL+"/book_acid_"+load.ID.String()+"_0.txt", packages[0].SQLRute)

	acid, err := os.ReadFile(filepath.Join(s.dir, "book_acid_"+load.ID.String()+"_0.txt"))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), first.ID.String()+"|||Dune\n"+second.ID.String()+"|||Emma\n", string(acid))

	ontology, err := os.ReadFile(filepath.Join(s.dir, "book_"+load.ID.String()+"_1.nq"))
	require.NoError(s.T(), err)
	assert.Equal(s.T(), third.OntologyTriples[0]+"\n", string(ontology))

	status, err := s.service.Status(load.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), vo.MassiveLoadStatus{LoadID: load.ID, Name: "nightly", State: "open", Packages: 1, Resources: 3}, status)
}

func (s *MassiveLoadServiceSuite) TestClose_FlagsOnlyTheLastPackage() {
	load := s.create()
	var packages []vo.MassiveLoadPackageParams

	s.gateway.EXPECT().SendPackage(mock.Anything, mock.Anything).
		Run(func(_ context.Context, params vo.MassiveLoadPackageParams) { packages = append(packages, params) }).
		Return(nil)
	s.journal.EXPECT().RecordPackage(mock.Anything, mock.Anything).Return(nil)
	s.gateway.EXPECT().CloseMassiveLoad(mock.Anything, load.ID).Return(nil)
	s.journal.EXPECT().UpdateLoadState(mock.Anything, load.ID, domain.MassiveLoadClosed, mock.Anything).Return(nil)

	require.NoError(s.T(), s.service.AddResource(context.Background(), load.ID, bookOntology, resourceFor("Dune")))
	require.NoError(s.T(), s.service.AddResource(context.Background(), load.ID, articleOntology, resourceFor("News")))

	status, err := s.service.Close(context.Background(), load.ID)
	require.NoError(s.T(), err)

	require.Len(s.T(), packages, 2)
	assert.Equal(s.T(), articleOntology, packages[0].Ontology)
	assert.False(s.T(), packages[0].IsLast)
	assert.Equal(s.T(), bookOntology, packages[1].Ontology)
	assert.True(s.T(), packages[1].IsLast)
	assert.Equal(s.T(), "closed", status.State)
	assert.Equal(s.T(), 2, status.Packages)
	assert.Equal(s.T(), 2, status.Resources)

	err = s.service.AddResource(context.Background(), load.ID, bookOntology, resourceFor("Late"))
	assert.ErrorIs(s.T(), err, vo.ErrMassiveLoadClosed)

	_, err = s.service.Close(context.Background(), load.ID)
	assert.ErrorIs(s.T(), err, vo.ErrMassiveLoadClosed)
}

func (s *MassiveLoadServiceSuite) TestClose_ExactMultipleFlagsTheFinalPackage() {
	load := s.create()
	var packages []vo.MassiveLoadPackageParams

	s.gateway.EXPECT().SendPackage(mock.Anything, mock.Anything).
		Run(func(_ context.Context, params vo.MassiveLoadPackageParams) { packages = append(packages, params) }).
		Return(nil)
	s.journal.EXPECT().RecordPackage(mock.Anything, mock.Anything).Return(nil)
	s.gateway.EXPECT().CloseMassiveLoad(mock.Anything, load.ID).Return(nil)
	s.journal.EXPECT().UpdateLoadState(mock.Anything, load.ID, domain.MassiveLoadClosed, mock.Anything).Return(nil)

	for _, title := range []string{"Dune", "Emma", "Ulysses", "Walden"} {
		require.NoError(s.T(), s.service.AddResource(context.Background(), load.ID, bookOntology, resourceFor(title)))
	}
	require.Len(s.T(), packages, 1)

	status, err := s.service.Close(context.Background(), load.ID)
	require.NoError(s.T(), err)

	require.Len(s.T(), packages, 2)
	assert.False(s.T(), packages[0].IsLast)
	assert.True(s.T(), packages[1].IsLast)
	assert.Equal(s.T(), publicURL+"/book_"+load.ID.String()+"_1.nq", packages[1].OntologyRute)
	assert.Equal(s.T(), 2, status.Packages)
	assert.Equal(s.T(), 4, status.Resources)
}

func (s *MassiveLoadServiceSuite) TestClose_RemoteFailureKeepsLoadOpen() {
	load := s.create()
	remoteErr := &vo.RemoteAPIError{StatusCode: 500, Message: "close failed"}

	s.gateway.EXPECT().CloseMassiveLoad(mock.Anything, load.ID).Return(remoteErr)

	_, err := s.service.Close(context.Background(), load.ID)
	require.Error(s.T(), err)
	assert.ErrorIs(s.T(), err, vo.ErrRemoteAPI)

	status, err := s.service.Status(load.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "open", status.State)
}

func (s *MassiveLoadServiceSuite) TestAddResource_TableDriven() {
	tests := []struct {
		name        string
		loadID      uuid.UUID
		ontologyURL string
		resource    domain.MassiveResource
		expected    error
	}{
		{name: "unknown load", loadID: uuid.New(), ontologyURL: bookOntology, resource: resourceFor("Dune"), expected: vo.ErrMassiveLoadNotFound},
		{name: "missing ontology", loadID: uuid.New(), ontologyURL: "", resource: resourceFor("Dune"), expected: vo.ErrInvalidArgument},
		{name: "missing resource id", loadID: uuid.New(), ontologyURL: bookOntology, resource: domain.MassiveResource{}, expected: vo.ErrInvalidArgument},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			err := s.service.AddResource(context.Background(), tc.loadID, tc.ontologyURL, tc.resource)
			require.Error(s.T(), err)
			assert.ErrorIs(s.T(), err, tc.expected)
		})
	}
}

func TestMassiveLoadServiceSuite(t *testing.T) {
	suite.Run(t, new(MassiveLoadServiceSuite))
}

func TestNewMassiveLoadService_RequiresStaging(t *testing.T) {
	tests := []struct {
		name  string
		opts  MassiveLoadOptions
		field string
	}{
		{name: "missing dir", opts: MassiveLoadOptions{PublicURL: publicURL}, field: "massive_load.dir"},
		{name: "missing public url", opts: MassiveLoadOptions{Dir: t.TempDir()}, field: "massive_load.public_url"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMassiveLoadService(nil, nil, nil, domain.Credentials{}, tc.opts, nil)
			require.Error(t, err)
			var configErr *vo.ConfigurationError
			require.ErrorAs(t, err, &configErr)
			assert.Equal(t, tc.field, configErr.Field)
		})
	}
}
