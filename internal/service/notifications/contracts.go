package notifications

import (
	"context"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// NotificationServiceClient интерфейс клиента сервиса уведомлений
type NotificationServiceClient interface {
	ListHistory(ctx context.Context, page, pageSize int) (domain.NotificationPage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
