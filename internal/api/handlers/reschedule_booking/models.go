package reschedule_booking

import rescheduleBooking "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/reschedule_booking"

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	Date      string `json:"date"`      // "2025-06-03"
	StartTime string `json:"startTime"` // "13:00"
	EndTime   string `json:"endTime"`   // "14:30"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID string) *rescheduleBooking.Request {
	return &rescheduleBooking.Request{
		BookingID: bookingID,
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}
