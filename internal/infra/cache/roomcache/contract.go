package roomcache

import (
	"context"
	"time"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// Directory источник, поверх которого работает кэш
type Directory interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	SearchRooms(ctx context.Context, window domain.TimeWindow, filters domain.RoomFilters) ([]domain.Room, error)
}

// Store key-value хранилище с TTL
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
