package transfer_booking

import (
	"context"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/bookingservice"
)

// BookingServiceClient интерфейс клиента для сервиса бронирований
type BookingServiceClient interface {
	TransferBooking(ctx context.Context, bookingID string, req *bookingservice.TransferRequest) error
}

// OutcomeRecorder учет итогов отправки
type OutcomeRecorder interface {
	RecordOutcome(operation, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
