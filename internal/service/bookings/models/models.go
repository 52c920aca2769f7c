package models

import (
	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	BookingID string `json:"bookingId"`
	RoomID    string `json:"roomId"`
	RoomName  string `json:"roomName,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует доменную модель в модель ответа
func FromDomainBooking(p domain.BookedPeriod) BookingResponse {
	return BookingResponse{
		BookingID: p.BookingID,
		RoomID:    p.RoomID,
		RoomName:  p.RoomName,
		StartTime: p.Window.StartISO(),
		EndTime:   p.Window.EndISO(),
		Status:    string(p.Status),
	}
}

// PendingApprovalResponse бронирование, ожидающее решения, в ответе API
type PendingApprovalResponse struct {
	BookingID string `json:"bookingId"`
	RoomID    string `json:"roomId"`
	RoomName  string `json:"roomName,omitempty"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// PendingApprovalListResponse очередь согласования
type PendingApprovalListResponse struct {
	Pending []PendingApprovalResponse `json:"pending"`
}

// FromDomainApproval конвертирует доменную модель в модель ответа
func FromDomainApproval(r domain.ApprovalRequest) PendingApprovalResponse {
	return PendingApprovalResponse{
		BookingID: r.Period.BookingID,
		RoomID:    r.Period.RoomID,
		RoomName:  r.Period.RoomName,
		UserID:    r.Period.UserID,
		UserName:  r.UserName,
		StartTime: r.Period.Window.StartISO(),
		EndTime:   r.Period.Window.EndISO(),
	}
}
