package rooms

import (
	"context"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// RoomDirectory источник справочника комнат (HTTP room service, Postgres или кэш поверх них)
type RoomDirectory interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	SearchRooms(ctx context.Context, window domain.TimeWindow, filters domain.RoomFilters) ([]domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
