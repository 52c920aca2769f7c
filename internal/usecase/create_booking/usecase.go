package create_booking

import (
	"context"
	"fmt"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/bookingservice"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/submission"
)

// UseCase use case для создания бронирования
type UseCase struct {
	resolver     RoomResolver
	client       BookingServiceClient
	policy       domain.WindowPolicy
	metrics      OutcomeRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// policy задает часовой пояс и минимальную длительность; проверка будущего времени включается всегда
func NewUseCase(
	resolver RoomResolver,
	client BookingServiceClient,
	policy domain.WindowPolicy,
	metrics OutcomeRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		resolver:     resolver,
		client:       client,
		policy:       policy,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute собирает запрос и отправляет его
// Всегда возвращает итог; отправка не выполняется, если сборка не удалась
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Response {
	uc.logger.Info("CreateBooking: user=%s, room=%+v, date=%s, time=%s, duration=%d",
		req.UserID, req.Room, req.Date, req.StartTime, req.DurationMinutes)

	tracker := submission.NewTracker(operationName, uc.logger)

	booking, err := uc.assemble(ctx, req, tracker)
	if err != nil {
		outcome := tracker.Finish(submission.Classify(err), uc.metrics)
		return &Response{Outcome: outcome, States: tracker.History()}
	}

	tracker.Advance(domain.StateSubmitting)
	outcome := tracker.Finish(uc.Submit(ctx, booking), uc.metrics)

	return &Response{Outcome: outcome, Booking: booking, States: tracker.History()}
}

// Assemble превращает поля формы в проверенный запрос
// Сначала окно (локально), затем комната (может потребовать обращения к справочнику)
func (uc *UseCase) Assemble(ctx context.Context, req *Request) (*domain.BookingRequest, error) {
	return uc.assemble(ctx, req, submission.NewTracker(operationName, uc.logger))
}

// Submit отправляет собранный запрос в сервис бронирований ровно один раз
func (uc *UseCase) Submit(ctx context.Context, booking *domain.BookingRequest) domain.Outcome {
	window := booking.Window()
	created, err := uc.client.CreateBooking(ctx, &bookingservice.CreateBookingRequest{
		UserID:    booking.UserID(),
		RoomID:    booking.RoomID(),
		StartTime: window.StartISO(),
		EndTime:   window.EndISO(),
	})
	if err != nil {
		uc.logger.Warn("CreateBooking: submit room=%s window=%s failed: %v", booking.RoomID(), window, err)
		return submission.Classify(err)
	}

	id := created.Identifier()
	if id == "" {
		return domain.RemoteUnavailable(ErrNoBookingID)
	}

	uc.logger.Info("CreateBooking: booking id=%s created for user=%s room=%s", id, booking.UserID(), booking.RoomID())
	return domain.Success(id)
}

func (uc *UseCase) assemble(ctx context.Context, req *Request, tracker *submission.Tracker) (*domain.BookingRequest, error) {
	tracker.Advance(domain.StateValidating)

	policy := uc.policy
	policy.RequireFuture = true
	policy.Now = uc.timeProvider.Now()

	window, err := domain.BuildWindow(req.Date, req.StartTime, req.DurationMinutes, policy)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	roomID := req.Room.ID
	if !req.Room.IsResolved() {
		tracker.Advance(domain.StateResolving)

		room, err := uc.resolver.Resolve(ctx, req.Room.Name)
		if err != nil {
			return nil, fmt.Errorf("resolve room %q: %w", req.Room.Name, err)
		}
		roomID = room.ID
	}

	booking, err := domain.NewBookingRequest(req.UserID, roomID, window)
	if err != nil {
		return nil, err
	}

	tracker.Advance(domain.StateReady)
	return booking, nil
}
