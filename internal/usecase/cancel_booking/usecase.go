package cancel_booking

import (
	"context"
	"strings"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/submission"
)

// UseCase use case для отмены бронирования
type UseCase struct {
	client  BookingServiceClient
	metrics OutcomeRecorder
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client BookingServiceClient, metrics OutcomeRecorder, logger Logger) *UseCase {
	return &UseCase{
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute отменяет бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Response {
	uc.logger.Info("CancelBooking: booking=%s", req.BookingID)

	tracker := submission.NewTracker(operationName, uc.logger)
	tracker.Advance(domain.StateValidating)

	bookingID := strings.TrimSpace(req.BookingID)
	if bookingID == "" {
		outcome := tracker.Finish(domain.ValidationFailure(domain.ReasonBookingRequired), uc.metrics)
		return &Response{Outcome: outcome, States: tracker.History()}
	}

	tracker.Advance(domain.StateReady)
	tracker.Advance(domain.StateSubmitting)

	if err := uc.client.CancelBooking(ctx, bookingID); err != nil {
		uc.logger.Warn("CancelBooking: booking=%s failed: %v", bookingID, err)
		outcome := tracker.Finish(submission.Classify(err), uc.metrics)
		return &Response{Outcome: outcome, States: tracker.History()}
	}

	uc.logger.Info("CancelBooking: booking=%s cancelled", bookingID)
	outcome := tracker.Finish(domain.Success(bookingID), uc.metrics)
	return &Response{Outcome: outcome, States: tracker.History()}
}
