package gnoss

import (
	"context"
	"log/slog"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain"
	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
	"github.com/joshuarp/gnoss-api-wrapper/internal/shared/transport"
)

type NotificationClient struct {
	base
}

func NewNotificationClient(client transport.Client, creds domain.Credentials, logger *slog.Logger) (*NotificationClient, error) {
	b, err := newBase(client, creds, logger)
	if err != nil {
		return nil, err
	}
	return &NotificationClient{base: b}, nil
}

func (c *NotificationClient) SendEmail(ctx context.Context, params vo.NotificationParams) error {
	if _, err := c.post(ctx, "notification/send-email", params); err != nil {
		return err
	}

	c.logger.Debug("email sent", "subject", params.Subject, "receivers", len(params.Receivers))
	return nil
}
