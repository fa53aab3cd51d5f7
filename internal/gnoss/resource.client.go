package gnoss

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/transport"
)

// ResourceClient covers /resource, /secondary-entity and /sparql-endpoint.
type ResourceClient struct {
	base
}

func NewResourceClient(client transport.Client, creds domain.Credentials, logger *slog.Logger) (*ResourceClient, error) {
	b, err := newBase(client, creds, logger)
	if err != nil {
		return nil, err
	}
	return &ResourceClient{base: b}, nil
}

// CreateBasicOntologyResource returns the id assigned by the remote service.
func (c *ResourceClient) CreateBasicOntologyResource(ctx context.Context, params vo.LoadResourceParams) (string, error) {
	return c.create(ctx, "resource/create-basic-ontology-resource", params)
}

func (c *ResourceClient) CreateComplexOntologyResource(ctx context.Context, params vo.LoadResourceParams) (string, error) {
	return c.create(ctx, "resource/create-complex-ontology-resource", params)
}

func (c *ResourceClient) create(ctx context.Context, path string, params vo.LoadResourceParams) (string, error) {
	response, err := c.post(ctx, path, params)
	if err != nil {
		c.logger.Error("resource not created", "path", path, "resource_id", params.ResourceID, "title", params.Title, "error", err)
		return "", err
	}

	id := unquote(response)
	if id == "" {
		c.logger.Warn("resource created without id", "path", path, "resource_id", params.ResourceID)
	} else if params.ResourceID != uuid.Nil && !strings.EqualFold(id, params.ResourceID.String()) {
		c.logger.Info("remote id differs from the requested one", "requested", params.ResourceID, "assigned", id)
	}
	return id, nil
}

func (c *ResourceClient) ModifyBasicOntologyResource(ctx context.Context, params vo.LoadResourceParams) error {
	_, err := c.post(ctx, "resource/modify-basic-ontology-resource", params)
	return err
}

func (c *ResourceClient) ModifyComplexOntologyResource(ctx context.Context, params vo.LoadResourceParams) error {
	_, err := c.post(ctx, "resource/modify-complex-ontology-resource", params)
	return err
}

func (c *ResourceClient) Delete(ctx context.Context, params vo.DeleteParams) error {
	_, err := c.post(ctx, "resource/delete", params)
	return err
}

func (c *ResourceClient) PersistentDelete(ctx context.Context, params vo.PersistentDeleteParams) error {
	_, err := c.post(ctx, "resource/persistent-delete", params)
	return err
}

func (c *ResourceClient) ModifyTripleList(ctx context.Context, params vo.ModifyResourceTripleListParams) error {
	_, err := c.post(ctx, "resource/modify-triple-list", params)
	return err
}

func (c *ResourceClient) InsertPropertiesLoadedResource(ctx context.Context, params vo.TriplesParams) (bool, error) {
	var ok bool
	err := c.postInto(ctx, "resource/insert-props-loaded-resource", params, &ok)
	return ok, err
}

func (c *ResourceClient) DeletePropertiesLoadedResource(ctx context.Context, params vo.TriplesParams) (bool, error) {
	var ok bool
	err := c.postInto(ctx, "resource/delete-props-loaded-resource", params, &ok)
	return ok, err
}

func (c *ResourceClient) ModifyProperty(ctx context.Context, params vo.ModifyResourcePropertyParams) error {
	_, err := c.post(ctx, "resource/modify-property", params)
	return err
}

func (c *ResourceClient) ExistsURL(ctx context.Context, params vo.ExistsURLParams) (bool, error) {
	var exists bool
	err := c.postInto(ctx, "resource/exists-url", params, &exists)
	return exists, err
}

func (c *ResourceClient) GetTags(ctx context.Context, resourceIDs []uuid.UUID) ([]vo.ResourceTags, error) {
	if len(resourceIDs) == 0 {
		return nil, vo.NewInvalidArgumentError("resource_ids", "at least one id is required")
	}

	var tags []vo.ResourceTags
	if err := transport.PostJSONInto(ctx, c.client, c.endpoint("resource/get-tags", nil), resourceIDs, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// GetPendingActions counts the resources of an ontology still queued on the
// remote side.
func (c *ResourceClient) GetPendingActions(ctx context.Context, ontologyURL, community string) (int, error) {
	community, err := c.community(community)
	if err != nil {
		return 0, err
	}

	query := url.Values{}
	query.Set("ontology_name", OntologyNameFromURL(ontologyURL))
	query.Set("community_short_name", community)

	response, err := transport.Get(ctx, c.client, c.endpoint("resource/get-pending-actions", query))
	if err != nil {
		return 0, err
	}

	count, err := strconv.Atoi(unquote(response))
	if err != nil {
		return 0, fmt.Errorf("gnoss: unexpected pending actions response %q: %w", response, err)
	}
	return count, nil
}

func (c *ResourceClient) CreateSecondaryEntity(ctx context.Context, params vo.SecondaryEntityParams) error {
	if len(params.RDF) == 0 {
		return vo.NewInvalidArgumentError("rdf", "is required")
	}
	_, err := c.post(ctx, "secondary-entity/create", params)
	return err
}

func (c *ResourceClient) ModifySecondaryEntity(ctx context.Context, params vo.SecondaryEntityParams) error {
	if len(params.RDF) == 0 {
		return vo.NewInvalidArgumentError("rdf", "is required")
	}
	_, err := c.post(ctx, "secondary-entity/modify", params)
	return err
}

func (c *ResourceClient) DeleteSecondaryEntity(ctx context.Context, params vo.SecondaryEntityParams) error {
	if strings.TrimSpace(params.EntityID) == "" {
		return vo.NewInvalidArgumentError("entity_id", "is required")
	}
	_, err := c.post(ctx, "secondary-entity/delete", params)
	return err
}

// Query runs a SPARQL SELECT against the community graph.
func (c *ResourceClient) Query(ctx context.Context, params vo.SparqlQueryParams) (vo.SparqlObject, error) {
	var result vo.SparqlObject
	if err := c.postInto(ctx, "sparql-endpoint/query", params, &result); err != nil {
		return vo.SparqlObject{}, err
	}
	return result, nil
}
