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

type CommunityClient struct {
	base
}

func NewCommunityClient(client transport.Client, creds domain.Credentials, logger *slog.Logger) (*CommunityClient, error) {
	b, err := newBase(client, creds, logger)
	if err != nil {
		return nil, err
	}
	return &CommunityClient{base: b}, nil
}

// GetCategories returns the thesaurus tree of a community.
func (c *CommunityClient) GetCategories(ctx context.Context, community string) ([]domain.ThesaurusCategory, error) {
	community, err := c.community(community)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("community_short_name", community)

	var categories []domain.ThesaurusCategory
	if err := transport.GetJSON(ctx, c.client, c.endpoint("community/get-categories", query), &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// RegisterLoad announces a load identifier. Failures of the load are then
// mailed to the developer email, which is therefore required.
func (c *CommunityClient) RegisterLoad(ctx context.Context, loadID, community string) error {
	if c.creds.DeveloperEmail == "" {
		return vo.NewInvalidArgumentError("developer_email", "is required to register a load")
	}

	community, err := c.community(community)
	if err != nil {
		return err
	}

	_, err = c.post(ctx, "community/register-load", vo.RegisterLoadParams{
		LoadID:             loadID,
		CommunityShortName: community,
		EmailResponsible:   c.creds.DeveloperEmail,
	})
	return err
}

// GetResponsibleLoad returns the email registered for loadID.
func (c *CommunityClient) GetResponsibleLoad(ctx context.Context, loadID, community string) (string, error) {
	if strings.TrimSpace(loadID) == "" {
		return "", vo.NewInvalidArgumentError("load_id", "is required")
	}

	community, err := c.community(community)
	if err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("community_short_name", community)
	query.Set("load_id", loadID)

	response, err := transport.Get(ctx, c.client, c.endpoint("community/get-responsible-load", query))
	if err != nil {
		return "", err
	}
	return unquote(response), nil
}
