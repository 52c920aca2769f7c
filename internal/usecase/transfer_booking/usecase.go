package transfer_booking

import (
	"context"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/bookingservice"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/submission"
)

// UseCase use case для передачи бронирования
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

// Execute проверяет email нового владельца и отправляет передачу
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Response {
	uc.logger.Info("TransferBooking: booking=%s", req.BookingID)

	tracker := submission.NewTracker(operationName, uc.logger)
	tracker.Advance(domain.StateValidating)

	transfer, err := domain.NewTransferRequest(req.BookingID, req.NewOwnerEmail)
	if err != nil {
		uc.logger.Warn("TransferBooking: validation failed: %v", err)
		outcome := tracker.Finish(submission.Classify(err), uc.metrics)
		return &Response{Outcome: outcome, States: tracker.History()}
	}

	tracker.Advance(domain.StateReady)
	tracker.Advance(domain.StateSubmitting)

	err = uc.client.TransferBooking(ctx, transfer.BookingID(), &bookingservice.TransferRequest{
		NewUserEmail: transfer.NewOwnerEmail(),
	})
	if err != nil {
		uc.logger.Warn("TransferBooking: booking=%s failed: %v", transfer.BookingID(), err)
		outcome := tracker.Finish(submission.Classify(err), uc.metrics)
		return &Response{Outcome: outcome, States: tracker.History()}
	}

	uc.logger.Info("TransferBooking: booking=%s transferred", transfer.BookingID())
	outcome := tracker.Finish(domain.Success(transfer.BookingID()), uc.metrics)
	return &Response{Outcome: outcome, States: tracker.History()}
}
