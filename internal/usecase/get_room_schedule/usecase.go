package get_room_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	roomStorage "github.com/JJnvn/Software-Arch-CPRoom/internal/infra/storage/room"
	roomClient "github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/roomservice"
)

// UseCase use case для получения расписания комнаты на день
type UseCase struct {
	source       ScheduleSource
	hours        Hours
	policy       domain.WindowPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// Некорректные рабочие часы считаются ошибкой конфигурации
func NewUseCase(source ScheduleSource, hours Hours, policy domain.WindowPolicy, logger Logger) (*UseCase, error) {
	if err := validateHours(hours); err != nil {
		return nil, err
	}
	return &UseCase{
		source:       source,
		hours:        hours,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}, nil
}

// Execute выполняет use case получения расписания
// Занятость возвращается за весь день, слоты только для еще не начавшегося рабочего времени
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetRoomSchedule: room=%s, date=%s", req.RoomID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRoomSchedule: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Границы дня в часовом поясе политики
	day, err := domain.BuildDay(req.Date, uc.policy)
	if err != nil {
		uc.logger.Warn("GetRoomSchedule: invalid date=%q", req.Date)
		return nil, err
	}

	if err := validateDate(day, now, uc.policy.Location, uc.hours.AdvanceDays); err != nil {
		uc.logger.Warn("GetRoomSchedule: date validation failed: %v", err)
		return nil, err
	}

	// 3. Слоты рабочего дня
	slots, err := generateSlots(req.Date, uc.hours, uc.policy, now)
	if err != nil {
		uc.logger.Error("GetRoomSchedule: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 4. Бронирования комнаты за день
	periods, err := uc.source.GetRoomSchedule(ctx, req.RoomID, day)
	if err != nil {
		if errors.Is(err, roomClient.ErrRoomNotFound) || errors.Is(err, roomStorage.ErrRoomNotFound) {
			uc.logger.Warn("GetRoomSchedule: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("GetRoomSchedule: failed to get schedule of room=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrScheduleUnavailable, err)
	}

	busy := activeOnly(periods)

	uc.logger.Info("GetRoomSchedule: room=%s day=%s busy=%d slots=%d", req.RoomID, day, len(busy), len(slots))

	return &Response{
		RoomID: req.RoomID,
		Date:   req.Date,
		Day:    day,
		Busy:   busy,
		Slots:  markAvailability(slots, busy),
	}, nil
}
