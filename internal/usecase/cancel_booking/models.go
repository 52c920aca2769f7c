package cancel_booking

import "github.com/JJnvn/Software-Arch-CPRoom/internal/domain"

const operationName = "cancel_booking"

// Request отмена бронирования
type Request struct {
	BookingID string
}

// Response итог отправки
type Response struct {
	Outcome domain.Outcome
	States  []domain.SubmissionState
}
