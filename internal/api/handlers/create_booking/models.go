package create_booking

import (
	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	createBooking "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID          string `json:"roomId,omitempty"`
	RoomName        string `json:"roomName,omitempty"`
	Date            string `json:"date"`      // "2025-06-02"
	StartTime       string `json:"startTime"` // "09:00"
	DurationMinutes int    `json:"durationMinutes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Поля передаются как есть: разбор даты и времени выполняет use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) *createBooking.Request {
	return &createBooking.Request{
		UserID:          userID,
		Room:            domain.RoomRef{ID: r.RoomID, Name: r.RoomName},
		Date:            r.Date,
		StartTime:       r.StartTime,
		DurationMinutes: r.DurationMinutes,
	}
}
