package deny_booking

import denyBooking "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/deny_booking"

// DenyBookingRequest HTTP request model, тело необязательно
type DenyBookingRequest struct {
	Reason string `json:"reason"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *DenyBookingRequest) ToUseCaseRequest(bookingID string) *denyBooking.Request {
	return &denyBooking.Request{
		BookingID: bookingID,
		Reason:    r.Reason,
	}
}
