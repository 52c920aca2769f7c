package create_booking

import (
	"context"
	"time"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/bookingservice"
)

// RoomResolver интерфейс резолвера имени комнаты
type RoomResolver interface {
	Resolve(ctx context.Context, rawName string) (*domain.Room, error)
}

// BookingServiceClient интерфейс клиента для сервиса бронирований
type BookingServiceClient interface {
	CreateBooking(ctx context.Context, req *bookingservice.CreateBookingRequest) (*bookingservice.CreatedBooking, error)
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
