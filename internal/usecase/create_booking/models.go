package create_booking

import "github.com/JJnvn/Software-Arch-CPRoom/internal/domain"

const operationName = "create_booking"

// Request сырые поля формы создания бронирования
type Request struct {
	UserID          string         // ID пользователя из сессии
	Room            domain.RoomRef // ID комнаты или введенное имя
	Date            string         // YYYY-MM-DD
	StartTime       string         // HH:MM
	DurationMinutes int            // Длительность в минутах
}

// Response итог отправки
type Response struct {
	Outcome domain.Outcome
	Booking *domain.BookingRequest   // nil, если запрос не был собран
	States  []domain.SubmissionState // Пройденные состояния
}
