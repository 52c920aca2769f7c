package approve_booking

import "context"

// ApprovalServiceClient интерфейс клиента сервиса согласований
type ApprovalServiceClient interface {
	ApproveBooking(ctx context.Context, bookingID string) error
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
