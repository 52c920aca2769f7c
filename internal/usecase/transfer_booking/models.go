package transfer_booking

import "github.com/JJnvn/Software-Arch-CPRoom/internal/domain"

const operationName = "transfer_booking"

// Request передача бронирования пользователю с указанным email
type Request struct {
	BookingID     string
	NewOwnerEmail string
}

// Response итог отправки
type Response struct {
	Outcome domain.Outcome
	States  []domain.SubmissionState
}
