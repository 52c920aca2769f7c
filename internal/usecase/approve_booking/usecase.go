package approve_booking

import (
	"context"
	"strings"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/submission"
)

// UseCase use case для подтверждения бронирования
type UseCase struct {
	client  ApprovalServiceClient
	metrics OutcomeRecorder
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client ApprovalServiceClient, metrics OutcomeRecorder, logger Logger) *UseCase {
	return &UseCase{
		client:  client,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute подтверждает бронирование, ожидающее решения
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Response {
	uc.logger.Info("ApproveBooking: booking=%s", req.BookingID)

	tracker := submission.NewTracker(operationName, uc.logger)
	tracker.Advance(domain.StateValidating)

	bookingID := strings.TrimSpace(req.BookingID)
	if bookingID == "" {
		outcome := tracker.Finish(domain.ValidationFailure(domain.ReasonBookingRequired), uc.metrics)
		return &Response{Outcome: outcome, States: tracker.History()}
	}

	tracker.Advance(domain.StateReady)
	tracker.Advance(domain.StateSubmitting)

	if err := uc.client.ApproveBooking(ctx, bookingID); err != nil {
		uc.logger.Warn("ApproveBooking: booking=%s failed: %v", bookingID, err)
		outcome := tracker.Finish(submission.Classify(err), uc.metrics)
		return &Response{Outcome: outcome, States: tracker.History()}
	}

	uc.logger.Info("ApproveBooking: booking=%s approved", bookingID)
	outcome := tracker.Finish(domain.Success(bookingID), uc.metrics)
	return &Response{Outcome: outcome, States: tracker.History()}
}
