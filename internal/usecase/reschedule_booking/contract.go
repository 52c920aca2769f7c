package reschedule_booking

import (
	"context"
	"time"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/bookingservice"
)

// BookingServiceClient интерфейс клиента для сервиса бронирований
type BookingServiceClient interface {
	RescheduleBooking(ctx context.Context, bookingID string, req *bookingservice.RescheduleRequest) error
}

// OutcomeRecorder учет итогов отправки
type OutcomeRecorder interface {
	RecordOutcome(operation, outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
