package reschedule_booking

import (
	"context"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/bookingservice"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/submission"
)

// UseCase use case для переноса бронирования
type UseCase struct {
	client       BookingServiceClient
	policy       domain.WindowPolicy
	metrics      OutcomeRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// policy.RequireFuture управляет проверкой, что новое окно не в прошлом
func NewUseCase(client BookingServiceClient, policy domain.WindowPolicy, metrics OutcomeRecorder, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		policy:       policy,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет новое окно и отправляет перенос
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Response {
	uc.logger.Info("RescheduleBooking: booking=%s, date=%s, start=%s, end=%s",
		req.BookingID, req.Date, req.StartTime, req.EndTime)

	tracker := submission.NewTracker(operationName, uc.logger)

	reschedule, err := uc.assemble(req, tracker)
	if err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		outcome := tracker.Finish(submission.Classify(err), uc.metrics)
		return &Response{Outcome: outcome, States: tracker.History()}
	}

	tracker.Advance(domain.StateSubmitting)
	outcome := tracker.Finish(uc.submit(ctx, reschedule), uc.metrics)

	return &Response{Outcome: outcome, States: tracker.History()}
}

func (uc *UseCase) assemble(req *Request, tracker *submission.Tracker) (*domain.RescheduleRequest, error) {
	tracker.Advance(domain.StateValidating)

	policy := uc.policy
	policy.Now = uc.timeProvider.Now()

	window, err := domain.BuildRange(req.Date, req.StartTime, req.EndTime, policy)
	if err != nil {
		return nil, err
	}

	reschedule, err := domain.NewRescheduleRequest(req.BookingID, window)
	if err != nil {
		return nil, err
	}

	tracker.Advance(domain.StateReady)
	return reschedule, nil
}

func (uc *UseCase) submit(ctx context.Context, reschedule *domain.RescheduleRequest) domain.Outcome {
	window := reschedule.Window()
	err := uc.client.RescheduleBooking(ctx, reschedule.BookingID(), &bookingservice.RescheduleRequest{
		StartTime: window.StartISO(),
		EndTime:   window.EndISO(),
	})
	if err != nil {
		uc.logger.Warn("RescheduleBooking: booking=%s window=%s failed: %v", reschedule.BookingID(), window, err)
		return submission.Classify(err)
	}

	uc.logger.Info("RescheduleBooking: booking=%s moved to %s", reschedule.BookingID(), window)
	return domain.Success(reschedule.BookingID())
}
