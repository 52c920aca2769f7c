package rooms

import (
	"context"
	"fmt"
	"strings"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// Resolver сопоставляет введенное пользователем имя комнаты с её идентификатором
type Resolver struct {
	directory RoomDirectory
	logger    Logger
}

// NewResolver создает новый экземпляр резолвера
func NewResolver(directory RoomDirectory, logger Logger) *Resolver {
	return &Resolver{
		directory: directory,
		logger:    logger,
	}
}

// Resolve получает полный список комнат (один запрос на вызов) и ищет точное совпадение имени
// без учета регистра и крайних пробелов
func (r *Resolver) Resolve(ctx context.Context, rawName string) (*domain.Room, error) {
	if strings.TrimSpace(rawName) == "" {
		return nil, ErrRoomNotFound
	}

	rooms, err := r.directory.ListRooms(ctx)
	if err != nil {
		r.logger.Error("ResolveRoom: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: list rooms: %v", ErrDirectoryUnavailable, err)
	}

	room, err := MatchByName(rawName, rooms)
	if err != nil {
		r.logger.Warn("ResolveRoom: name=%q: %v (directory size=%d)", rawName, err, len(rooms))
		return nil, err
	}

	r.logger.Info("ResolveRoom: name=%q resolved to id=%s", rawName, room.ID)
	return room, nil
}

// Search ищет свободные комнаты на окно с фильтрами
func (r *Resolver) Search(ctx context.Context, window domain.TimeWindow, filters domain.RoomFilters) ([]domain.Room, error) {
	rooms, err := r.directory.SearchRooms(ctx, window, filters)
	if err != nil {
		r.logger.Error("SearchRooms: window=%s: %v", window, err)
		return nil, fmt.Errorf("%w: search rooms: %v", ErrDirectoryUnavailable, err)
	}
	return rooms, nil
}

// MatchByName ищет комнату по имени в уже полученном списке
// Несколько совпадений считаются ошибкой, первая подходящая комната не выбирается молча
func MatchByName(rawName string, rooms []domain.Room) (*domain.Room, error) {
	want := domain.NormalizeRoomName(rawName)
	if want == "" {
		return nil, ErrRoomNotFound
	}

	var match *domain.Room
	for i := range rooms {
		if domain.NormalizeRoomName(rooms[i].Name) != want {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: %q matches %s and %s", ErrRoomAmbiguous, rawName, match.ID, rooms[i].ID)
		}
		match = &rooms[i]
	}

	if match == nil {
		return nil, ErrRoomNotFound
	}

	found := *match
	return &found, nil
}
