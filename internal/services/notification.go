package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/joshuarp/gnoss-api-wrapper/internal/domain/vo"
)

type NotificationGateway interface {
	SendEmail(ctx context.Context, params vo.NotificationParams) error
}

type NotificationService struct {
	gateway NotificationGateway
	logger  *slog.Logger
}

func NewNotificationService(gateway NotificationGateway, logger *slog.Logger) *NotificationService {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotificationService{gateway: gateway, logger: logger}
}

// SendEmail drops blank and repeated receivers before sending.
func (s *NotificationService) SendEmail(ctx context.Context, params vo.NotificationParams) error {
	seen := make(map[string]struct{}, len(params.Receivers))
	receivers := make([]string, 0, len(params.Receivers))
	for _, receiver := range params.Receivers {
		receiver = strings.TrimSpace(receiver)
		key := strings.ToLower(receiver)
		if receiver == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		receivers = append(receivers, receiver)
	}
	params.Receivers = receivers

	if err := s.gateway.SendEmail(ctx, params); err != nil {
		s.logger.Error("email not sent", "subject", params.Subject, "error", err)
		return err
	}
	return nil
}
