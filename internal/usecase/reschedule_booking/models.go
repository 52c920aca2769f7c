package reschedule_booking

import "github.com/JJnvn/Software-Arch-CPRoom/internal/domain"

const operationName = "reschedule_booking"

// Request поля формы переноса: новое начало и конец в пределах одной даты
type Request struct {
	BookingID string
	Date      string // YYYY-MM-DD
	StartTime string // HH:MM
	EndTime   string // HH:MM
}

// Response итог отправки
type Response struct {
	Outcome domain.Outcome
	States  []domain.SubmissionState
}
