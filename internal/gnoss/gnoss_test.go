package gnoss

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/oauth"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/transport"
)

type capturedRequest struct {
	Method        string
	Path          string
	Query         url.Values
	Authorization string
	Body          string
}

type fakeGnoss struct {
	mu        sync.Mutex
	requests  []capturedRequest
	responses map[string]string
	status    map[string]int
}

func (f *fakeGnoss) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, capturedRequest{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.Query(),
		Authorization: r.Header.Get("Authorization"),
		Body:          string(body),
	})
	response := f.responses[r.URL.Path]
	status := f.status[r.URL.Path]
	f.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
	}
	_, _ = w.Write([]byte(response))
}

func (f *fakeGnoss) last() capturedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func (f *fakeGnoss) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type ClientSuite struct {
	suite.Suite

	fake   *fakeGnoss
	server *httptest.Server
	creds  domain.Credentials
	client transport.Client
}

func (s *ClientSuite) SetupTest() {
	s.fake = &fakeGnoss{responses: map[string]string{}, status: map[string]int{}}
	s.server = httptest.NewServer(s.fake)
	s.creds = domain.Credentials{
		ConsumerKey:        "ck",
		ConsumerSecret:     "cs",
		TokenKey:           "tk",
		TokenSecret:        "ts",
		APIEndpoint:        s.server.URL + "/",
		CommunityShortName: "demo",
		DeveloperEmail:     "dev@example.com",
	}

	signer, err := oauth.New(oauth.Options{
		ConsumerKey:    s.creds.ConsumerKey,
		ConsumerSecret: s.creds.ConsumerSecret,
		TokenKey:       s.creds.TokenKey,
		TokenSecret:    s.creds.TokenSecret,
	})
	require.NoError(s.T(), err)

	s.client, err = transport.New(transport.Options{Signer: signer, Logger: discardLogger()})
	require.NoError(s.T(), err)
}

func (s *ClientSuite) TearDownTest() {
	s.server.Close()
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *ClientSuite) bodyOf(req capturedRequest) map[string]any {
	var body map[string]any
	require.NoError(s.T(), json.Unmarshal([]byte(req.Body), &body))
	return body
}

func (s *ClientSuite) TestCreateBasicOntologyResource_EndToEnd() {
	s.fake.responses["/resource/create-basic-ontology-resource"] = `"0b2c6f0e-4c1e-4b44-9f54-2f0b1d1c9a10"`

	resources, err := NewResourceClient(s.client, s.creds, discardLogger())
	require.NoError(s.T(), err)

	id, err := resources.CreateBasicOntologyResource(context.Background(), vo.LoadResourceParams{
		CommunityShortName: "demo",
		Title:              "A note",
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "0b2c6f0e-4c1e-4b44-9f54-2f0b1d1c9a10", id)

	require.Equal(s.T(), 1, s.fake.count())
	req := s.fake.last()
	assert.Equal(s.T(), http.MethodPost, req.Method)
	assert.Equal(s.T(), "/resource/create-basic-ontology-resource", req.Path)
	assert.True(s.T(), strings.HasPrefix(req.Authorization, `OAuth realm="Example", oauth_consumer_key="ck"`))
	assert.Contains(s.T(), req.Authorization, `oauth_signature="`)

	body := s.bodyOf(req)
	assert.Equal(s.T(), "A note", body["title"])
	assert.Equal(s.T(), "demo", body["community_short_name"])
}

func (s *ClientSuite) TestResourceClient_TableDriven() {
	resourceID := uuid.MustParse("6f1c2a55-9b0e-4f43-8f43-5d7f0c6a1e01")

	tests := []struct {
		name      string
		path      string
		response  string
		status    int
		call      func(*ResourceClient) (any, error)
		assertion func(any, error, capturedRequest)
	}{
		{
			name: "delete posts ids and flags",
			path: "/resource/delete",
			call: func(c *ResourceClient) (any, error) {
				return nil, c.Delete(context.Background(), vo.DeleteParams{
					ResourceID: resourceID, CommunityShortName: "demo", ChargeID: "load-1", EndOfLoad: true,
				})
			},
			assertion: func(_ any, err error, req capturedRequest) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), "/resource/delete", req.Path)
				body := s.bodyOf(req)
				assert.Equal(s.T(), resourceID.String(), body["resource_id"])
				assert.Equal(s.T(), "load-1", body["charge_id"])
				assert.Equal(s.T(), true, body["end_of_load"])
			},
		},
		{
			name:     "insert properties decodes bool",
			path:     "/resource/insert-props-loaded-resource",
			response: "true",
			call: func(c *ResourceClient) (any, error) {
				return c.InsertPropertiesLoadedResource(context.Background(), vo.TriplesParams{
					ResourceID:         resourceID,
					CommunityShortName: "demo",
					TriplesList:        []domain.Triple{{Subject: "s", Predicate: "p", Object: "o"}},
				})
			},
			assertion: func(result any, err error, req capturedRequest) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), true, result)
				assert.Equal(s.T(), "/resource/insert-props-loaded-resource", req.Path)
			},
		},
		{
			name:     "exists url",
			path:     "/resource/exists-url",
			response: "false",
			call: func(c *ResourceClient) (any, error) {
				return c.ExistsURL(context.Background(), vo.ExistsURLParams{CommunityShortName: "demo", URL: "https://example.com/a"})
			},
			assertion: func(result any, err error, req capturedRequest) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), false, result)
				assert.Equal(s.T(), "/resource/exists-url", req.Path)
			},
		},
		{
			name:     "pending actions sends ontology name and community",
			path:     "/resource/get-pending-actions",
			response: "7",
			call: func(c *ResourceClient) (any, error) {
				return c.GetPendingActions(context.Background(), "https://example.com/ontologies/book.owl", "")
			},
			assertion: func(result any, err error, req capturedRequest) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), 7, result)
				assert.Equal(s.T(), http.MethodGet, req.Method)
				assert.Equal(s.T(), "/resource/get-pending-actions", req.Path)
				assert.Equal(s.T(), "book", req.Query.Get("ontology_name"))
				assert.Equal(s.T(), "demo", req.Query.Get("community_short_name"))
				assert.Empty(s.T(), req.Body)
			},
		},
		{
			name:     "get tags posts a bare id list",
			path:     "/resource/get-tags",
			response: `[{"resource_id":"6f1c2a55-9b0e-4f43-8f43-5d7f0c6a1e01","tags":["a","b"]}]`,
			call: func(c *ResourceClient) (any, error) {
				return c.GetTags(context.Background(), []uuid.UUID{resourceID})
			},
			assertion: func(result any, err error, req capturedRequest) {
				require.NoError(s.T(), err)
				tags := result.([]vo.ResourceTags)
				require.Len(s.T(), tags, 1)
				assert.Equal(s.T(), []string{"a", "b"}, tags[0].Tags)
				assert.Equal(s.T(), `["6f1c2a55-9b0e-4f43-8f43-5d7f0c6a1e01"]`, req.Body)
			},
		},
		{
			name:     "sparql query decodes bindings",
			path:     "/sparql-endpoint/query",
			response: `{"head":{"vars":["s"]},"results":{"bindings":[{"s":{"type":"uri","value":"http://x/1"}}]}}`,
			call: func(c *ResourceClient) (any, error) {
				return c.Query(context.Background(), vo.SparqlQueryParams{
					Ontology: "book", CommunityShortName: "demo", QuerySelect: "select ?s", QueryWhere: "where {?s ?p ?o}",
				})
			},
			assertion: func(result any, err error, req capturedRequest) {
				require.NoError(s.T(), err)
				object := result.(vo.SparqlObject)
				assert.Equal(s.T(), []string{"s"}, object.Head.Vars)
				assert.Equal(s.T(), "http://x/1", object.Results.Bindings[0]["s"].Value)
				assert.Equal(s.T(), "/sparql-endpoint/query", req.Path)
			},
		},
		{
			name:     "remote rejection surfaces server message",
			path:     "/resource/modify-property",
			response: `{"error":"bad request"}`,
			status:   http.StatusBadRequest,
			call: func(c *ResourceClient) (any, error) {
				return nil, c.ModifyProperty(context.Background(), vo.ModifyResourcePropertyParams{
					ResourceID: resourceID, CommunityShortName: "demo", Property: "http://x/p",
				})
			},
			assertion: func(_ any, err error, req capturedRequest) {
				var remote *vo.RemoteAPIError
				require.ErrorAs(s.T(), err, &remote)
				assert.Equal(s.T(), `{"error":"bad request"}`, remote.Message)
				assert.Equal(s.T(), "/resource/modify-property", req.Path)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.TearDownTest()
			s.SetupTest()

			s.fake.responses[tc.path] = tc.response
			s.fake.status[tc.path] = tc.status

			client, err := NewResourceClient(s.client, s.creds, discardLogger())
			require.NoError(s.T(), err)

			result, err := tc.call(client)
			tc.assertion(result, err, s.fake.last())
		})
	}
}

func (s *ClientSuite) TestValidationFailsBeforeSending() {
	resources, err := NewResourceClient(s.client, s.creds, discardLogger())
	require.NoError(s.T(), err)

	_, err = resources.CreateComplexOntologyResource(context.Background(), vo.LoadResourceParams{CommunityShortName: "demo"})

	var invalid *vo.InvalidArgumentError
	require.ErrorAs(s.T(), err, &invalid)
	assert.Contains(s.T(), invalid.Argument, "Title")
	assert.Equal(s.T(), 0, s.fake.count())
}

func (s *ClientSuite) TestCommunityClient() {
	s.fake.responses["/community/get-categories"] = `[{"category_id":"5c0e7f4a-3c59-4b7a-9e1a-6f2d0b6d1a01","category_name":"Science","children":[]}]`

	community, err := NewCommunityClient(s.client, s.creds, discardLogger())
	require.NoError(s.T(), err)

	categories, err := community.GetCategories(context.Background(), "")
	require.NoError(s.T(), err)
	require.Len(s.T(), categories, 1)
	assert.Equal(s.T(), "Science", categories[0].Name)
	assert.Equal(s.T(), "demo", s.fake.last().Query.Get("community_short_name"))

	require.NoError(s.T(), community.RegisterLoad(context.Background(), "demo~2026/1/2~3:4:5", ""))
	body := s.bodyOf(s.fake.last())
	assert.Equal(s.T(), "/community/register-load", s.fake.last().Path)
	assert.Equal(s.T(), "dev@example.com", body["email_responsible"])
	assert.Equal(s.T(), "demo~2026/1/2~3:4:5", body["load_id"])
}

func (s *ClientSuite) TestRegisterLoad_RequiresDeveloperEmail() {
	creds := s.creds
	creds.DeveloperEmail = ""

	community, err := NewCommunityClient(s.client, creds, discardLogger())
	require.NoError(s.T(), err)

	err = community.RegisterLoad(context.Background(), "load", "")
	assert.ErrorIs(s.T(), err, vo.ErrInvalidArgument)
	assert.Equal(s.T(), 0, s.fake.count())
}

func (s *ClientSuite) TestThesaurusClient() {
	s.fake.responses["/thesaurus/get-thesaurus"] = `"<rdf:RDF/>"`

	thesaurus, err := NewThesaurusClient(s.client, s.creds, discardLogger())
	require.NoError(s.T(), err)

	rdf, err := thesaurus.GetThesaurus(context.Background(), "https://example.com/taxonomy.owl", "source-a")
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "<rdf:RDF/>", rdf)
	assert.Equal(s.T(), "source-a", s.fake.last().Query.Get("source"))

	err = thesaurus.InsertNode(context.Background(), vo.InsertNodeParams{
		ThesaurusOntologyURL: "taxonomy.owl",
		RDFCategory:          []byte("<rdf/>"),
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "/thesaurus/insert-node", s.fake.last().Path)
	assert.Equal(s.T(), "demo", s.bodyOf(s.fake.last())["community_short_name"])

	err = thesaurus.SetNodeParent(context.Background(), vo.ParentNodeParams{
		ThesaurusOntologyURL: "taxonomy.owl",
		ParentCategoryID:     "p",
		ChildCategoryID:      "c",
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "p", s.bodyOf(s.fake.last())["parent_catergory_id"])
}

func (s *ClientSuite) TestNotificationClient_RequiresReceivers() {
	notifications, err := NewNotificationClient(s.client, s.creds, discardLogger())
	require.NoError(s.T(), err)

	err = notifications.SendEmail(context.Background(), vo.NotificationParams{Subject: "s", Message: "m"})
	assert.ErrorIs(s.T(), err, vo.ErrInvalidArgument)

	err = notifications.SendEmail(context.Background(), vo.NotificationParams{
		Subject: "s", Message: "m", Receivers: []string{"a@example.com"},
	})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "/notification/send-email", s.fake.last().Path)
}

func (s *ClientSuite) TestMassiveLoadClient_DefaultsOrganization() {
	loads, err := NewMassiveLoadClient(s.client, s.creds, discardLogger())
	require.NoError(s.T(), err)

	loadID := uuid.MustParse("0190f3c2-1111-7000-8000-000000000001")
	require.NoError(s.T(), loads.CreateMassiveLoad(context.Background(), vo.MassiveLoadParams{LoadID: loadID, Name: "books"}))

	body := s.bodyOf(s.fake.last())
	assert.Equal(s.T(), "/resource/create-massive-load", s.fake.last().Path)
	assert.Equal(s.T(), domain.DefaultOrganizationID.String(), body["oganization_id"])
	assert.Equal(s.T(), "demo", body["community_name"])

	require.NoError(s.T(), loads.CloseMassiveLoad(context.Background(), loadID))
	assert.Equal(s.T(), loadID.String(), s.bodyOf(s.fake.last())["DataLoadIdentifier"])
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func TestNewBase(t *testing.T) {
	_, err := newBase(nil, domain.Credentials{APIEndpoint: "http://x"}, nil)
	assert.Error(t, err)

	_, err = newBase(transportStub{}, domain.Credentials{}, nil)
	assert.True(t, errors.Is(err, vo.ErrConfiguration))

	b, err := newBase(transportStub{}, domain.Credentials{APIEndpoint: "http://x/api/"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "http://x/api/resource/delete", b.endpoint("/resource/delete", nil))
	assert.Equal(t, "http://x/api/a?q=a+b%26c", b.endpoint("a", url.Values{"q": {"a b&c"}}))

	_, err = b.community("")
	assert.ErrorIs(t, err, vo.ErrInvalidArgument)
}

type transportStub struct{}

func (transportStub) Do(context.Context, transport.Request) (string, error) { return "", nil }
