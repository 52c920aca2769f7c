package search_rooms

import (
	"context"
	"fmt"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// UseCase use case для поиска свободных комнат на окно
type UseCase struct {
	searcher     RoomSearcher
	policy       domain.WindowPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(searcher RoomSearcher, policy domain.WindowPolicy, logger Logger) *UseCase {
	return &UseCase{
		searcher:     searcher,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит окно (только будущее), проверяет фильтры и ищет комнаты
// Ошибки валидации возвращаются как *domain.ValidationError
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchRooms: date=%s, time=%s, duration=%d", req.Date, req.StartTime, req.DurationMinutes)

	policy := uc.policy
	policy.RequireFuture = true
	policy.Now = uc.timeProvider.Now()

	window, err := domain.BuildWindow(req.Date, req.StartTime, req.DurationMinutes, policy)
	if err != nil {
		uc.logger.Warn("SearchRooms: validation failed: %v", err)
		return nil, err
	}

	filters, err := buildFilters(req)
	if err != nil {
		uc.logger.Warn("SearchRooms: validation failed: %v", err)
		return nil, err
	}

	rooms, err := uc.searcher.Search(ctx, window, filters)
	if err != nil {
		uc.logger.Error("SearchRooms: window=%s: %v", window, err)
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	// Фильтры применяются повторно: справочник может их игнорировать
	result := make([]domain.Room, 0, len(rooms))
	for i := range rooms {
		if !matches(&rooms[i], filters) {
			continue
		}
		result = append(result, rooms[i])
	}

	uc.logger.Info("SearchRooms: window=%s found %d rooms", window, len(result))
	return &Response{Window: window, Rooms: result}, nil
}

func matches(room *domain.Room, filters domain.RoomFilters) bool {
	if filters.MinCapacity != nil && room.Capacity != nil && *room.Capacity < *filters.MinCapacity {
		return false
	}
	return room.HasFeatures(filters.Features)
}
