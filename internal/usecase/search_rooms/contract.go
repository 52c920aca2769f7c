package search_rooms

import (
	"context"
	"time"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// RoomSearcher интерфейс поиска свободных комнат
type RoomSearcher interface {
	Search(ctx context.Context, window domain.TimeWindow, filters domain.RoomFilters) ([]domain.Room, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
