package get_room_schedule

import (
	getRoomSchedule "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/get_room_schedule"
)

// RoomScheduleResponse HTTP response model
type RoomScheduleResponse struct {
	RoomID   string            `json:"roomId"`
	Date     string            `json:"date"`
	DayStart string            `json:"dayStart"`
	DayEnd   string            `json:"dayEnd"`
	Bookings []BookingResponse `json:"bookings"`
	Slots    []SlotResponse    `json:"slots"`
}

// BookingResponse занятый период комнаты
type BookingResponse struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// SlotResponse модель временного слота
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRoomSchedule.Response) *RoomScheduleResponse {
	bookings := make([]BookingResponse, 0, len(resp.Busy))
	for _, b := range resp.Busy {
		bookings = append(bookings, BookingResponse{
			BookingID: b.BookingID,
			UserID:    b.UserID,
			StartTime: b.Window.StartISO(),
			EndTime:   b.Window.EndISO(),
			Status:    string(b.Status),
		})
	}

	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: s.Window.StartISO(),
			EndTime:   s.Window.EndISO(),
			Available: s.Available,
		})
	}

	return &RoomScheduleResponse{
		RoomID:   resp.RoomID,
		Date:     resp.Date,
		DayStart: resp.Day.StartISO(),
		DayEnd:   resp.Day.EndISO(),
		Bookings: bookings,
		Slots:    slots,
	}
}
