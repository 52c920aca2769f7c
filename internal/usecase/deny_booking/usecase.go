package deny_booking

import (
	"context"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/submission"
)

// UseCase use case для отклонения бронирования
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

// Execute отклоняет бронирование, ожидающее решения
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Response {
	uc.logger.Info("DenyBooking: booking=%s", req.BookingID)

	tracker := submission.NewTracker(operationName, uc.logger)
	tracker.Advance(domain.StateValidating)

	bookingID, reason, err := validateRequest(req)
	if err != nil {
		outcome := tracker.Finish(submission.Classify(err), uc.metrics)
		return &Response{Outcome: outcome, States: tracker.History()}
	}

	tracker.Advance(domain.StateReady)
	tracker.Advance(domain.StateSubmitting)

	if err := uc.client.DenyBooking(ctx, bookingID, reason); err != nil {
		uc.logger.Warn("DenyBooking: booking=%s failed: %v", bookingID, err)
		outcome := tracker.Finish(submission.Classify(err), uc.metrics)
		return &Response{Outcome: outcome, States: tracker.History()}
	}

	uc.logger.Info("DenyBooking: booking=%s denied", bookingID)
	outcome := tracker.Finish(domain.Success(bookingID), uc.metrics)
	return &Response{Outcome: outcome, States: tracker.History()}
}
