package get_notification_history

import (
	"context"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/service/notifications/models"
)

type NotificationService interface {
	GetHistory(ctx context.Context, req *models.GetHistoryRequest) (*models.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
