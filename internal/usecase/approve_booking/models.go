package approve_booking

import "github.com/JJnvn/Software-Arch-CPRoom/internal/domain"

const operationName = "approve_booking"

// Request подтверждение бронирования сотрудником
type Request struct {
	BookingID string
}

// Response итог отправки
type Response struct {
	Outcome domain.Outcome
	States  []domain.SubmissionState
}
