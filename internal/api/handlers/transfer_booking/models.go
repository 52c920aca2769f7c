package transfer_booking

import transferBooking "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/transfer_booking"

// TransferBookingRequest HTTP request model
type TransferBookingRequest struct {
	NewOwnerEmail string `json:"newOwnerEmail"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *TransferBookingRequest) ToUseCaseRequest(bookingID string) *transferBooking.Request {
	return &transferBooking.Request{
		BookingID:     bookingID,
		NewOwnerEmail: r.NewOwnerEmail,
	}
}
