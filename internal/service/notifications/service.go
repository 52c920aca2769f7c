package notifications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	notificationClient "github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/notificationservice"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/service/notifications/models"
)

// Service сервис истории уведомлений
type Service struct {
	client NotificationServiceClient
	logger Logger
}

// NewService создает новый экземпляр сервиса
// client может быть nil, если сервис уведомлений не настроен
func NewService(client NotificationServiceClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// GetHistory получает страницу истории уведомлений пользователя
func (s *Service) GetHistory(ctx context.Context, req *models.GetHistoryRequest) (*models.HistoryResponse, error) {
	if strings.TrimSpace(req.UserID) == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.NewValidationError(domain.ReasonUserRequired))
	}
	if s.client == nil {
		return nil, fmt.Errorf("%w: GetHistory - notification service is not configured", ErrUnavailable)
	}

	page, pageSize := domain.NormalizeHistoryPage(req.Page, req.PageSize)
	s.logger.Info("GetHistory: fetching page=%d size=%d for user=%s", page, pageSize, req.UserID)

	result, err := s.client.ListHistory(ctx, page, pageSize)
	if err != nil {
		if errors.Is(err, notificationClient.ErrRejected) {
			s.logger.Warn("GetHistory: rejected for user=%s: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		}
		s.logger.Error("GetHistory: notification service error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetHistory - notification service error: %v", ErrUnavailable, err)
	}

	resp := &models.HistoryResponse{
		Page:     result.Page,
		PageSize: result.PageSize,
		History:  make([]models.NotificationResponse, 0, len(result.Items)),
	}
	for _, n := range result.Items {
		resp.History = append(resp.History, models.FromDomainNotification(n))
	}

	s.logger.Info("GetHistory: found %d notifications for user=%s", len(resp.History), req.UserID)
	return resp, nil
}
