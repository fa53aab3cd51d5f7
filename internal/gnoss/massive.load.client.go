package gnoss

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/transport"
)

type MassiveLoadClient struct {
	base
}

func NewMassiveLoadClient(client transport.Client, creds domain.Credentials, logger *slog.Logger) (*MassiveLoadClient, error) {
	b, err := newBase(client, creds, logger)
	if err != nil {
		return nil, err
	}
	return &MassiveLoadClient{base: b}, nil
}

// CreateMassiveLoad opens a load on the remote side. A nil organization is
// replaced with domain.DefaultOrganizationID.
func (c *MassiveLoadClient) CreateMassiveLoad(ctx context.Context, params vo.MassiveLoadParams) error {
	if params.CommunityName == "" {
		params.CommunityName = c.creds.CommunityShortName
	}
	if params.OrganizationID == uuid.Nil {
		params.OrganizationID = domain.DefaultOrganizationID
	}

	_, err := c.post(ctx, "resource/create-massive-load", params)
	return err
}

// SendPackage hands over the staged files of one package. The remote side
// downloads them from the given routes.
func (c *MassiveLoadClient) SendPackage(ctx context.Context, params vo.MassiveLoadPackageParams) error {
	_, err := c.post(ctx, "resource/create-massive-load-package", params)
	return err
}

func (c *MassiveLoadClient) CloseMassiveLoad(ctx context.Context, loadID uuid.UUID) error {
	_, err := c.post(ctx, "resource/close-massive-load", vo.CloseMassiveLoadParams{DataLoadIdentifier: loadID})
	return err
}
