package bookings

import (
	"context"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// BookingServiceClient интерфейс клиента сервиса бронирований
type BookingServiceClient interface {
	ListUserBookings(ctx context.Context) ([]domain.BookedPeriod, error)
}

// ApprovalServiceClient интерфейс клиента сервиса согласований
type ApprovalServiceClient interface {
	ListPendingApprovals(ctx context.Context) ([]domain.ApprovalRequest, error)
}

// RoomDirectory справочник комнат для подстановки названий
type RoomDirectory interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
