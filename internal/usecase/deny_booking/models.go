package deny_booking

import "github.com/JJnvn/Software-Arch-CPRoom/internal/domain"

const operationName = "deny_booking"

// Request отклонение бронирования сотрудником
type Request struct {
	BookingID string
	Reason    string // необязательная причина для пользователя
}

// Response итог отправки
type Response struct {
	Outcome domain.Outcome
	States  []domain.SubmissionState
}
