package gnoss

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/transport"
)

type ThesaurusClient struct {
	base
}

func NewThesaurusClient(client transport.Client, creds domain.Credentials, logger *slog.Logger) (*ThesaurusClient, error) {
	b, err := newBase(client, creds, logger)
	if err != nil {
		return nil, err
	}
	return &ThesaurusClient{base: b}, nil
}

// GetThesaurus returns the thesaurus RDF as a string.
func (c *ThesaurusClient) GetThesaurus(ctx context.Context, thesaurusOntologyURL, source string) (string, error) {
	if strings.TrimSpace(thesaurusOntologyURL) == "" {
		return "", vo.NewInvalidArgumentError("thesaurus_ontology_url", "is required")
	}

	community, err := c.community("")
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("thesaurus_ontology_url", thesaurusOntologyURL)
	query.Set("community_short_name", community)
	query.Set("source", source)

	response, err := transport.Get(ctx, c.client, c.endpoint("thesaurus/get-thesaurus", query))
	if err != nil {
		return "", err
	}
	return unquote(response), nil
}

// MoveNode moves a category under the node reached by params.Path.
func (c *ThesaurusClient) MoveNode(ctx context.Context, params vo.MoveNodeParams) error {
	_, err := c.post(ctx, "thesaurus/move-node", c.withCommunity(params))
	return err
}

// DeleteNode deletes a category, moving its resources to params.Path.
func (c *ThesaurusClient) DeleteNode(ctx context.Context, params vo.MoveNodeParams) error {
	_, err := c.post(ctx, "thesaurus/delete-node", c.withCommunity(params))
	return err
}

func (c *ThesaurusClient) SetNodeParent(ctx context.Context, params vo.ParentNodeParams) error {
	if params.CommunityShortName == "" {
		params.CommunityShortName = c.creds.CommunityShortName
	}
	_, err := c.post(ctx, "thesaurus/set-node-parent", params)
	return err
}

func (c *ThesaurusClient) ChangeNodeName(ctx context.Context, params vo.ChangeNodeNameParams) error {
	if params.CommunityShortName == "" {
		params.CommunityShortName = c.creds.CommunityShortName
	}
	_, err := c.post(ctx, "thesaurus/change-node-name", params)
	return err
}

func (c *ThesaurusClient) InsertNode(ctx context.Context, params vo.InsertNodeParams) error {
	if params.CommunityShortName == "" {
		params.CommunityShortName = c.creds.CommunityShortName
	}
	_, err := c.post(ctx, "thesaurus/insert-node", params)
	return err
}

func (c *ThesaurusClient) withCommunity(params vo.MoveNodeParams) vo.MoveNodeParams {
	if params.CommunityShortName == "" {
		params.CommunityShortName = c.creds.CommunityShortName
	}
	return params
}
