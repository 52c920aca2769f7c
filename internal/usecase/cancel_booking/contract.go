package cancel_booking

import "context"

// BookingServiceClient интерфейс клиента для сервиса бронирований
type BookingServiceClient interface {
	CancelBooking(ctx context.Context, bookingID string) error
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
