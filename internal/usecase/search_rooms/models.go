package search_rooms

import "github.com/JJnvn/Software-Arch-CPRoom/internal/domain"

// Request параметры поиска свободных комнат
type Request struct {
	Date            string   // YYYY-MM-DD
	StartTime       string   // HH:MM
	DurationMinutes int      // Длительность в минутах
	MinCapacity     *int     // Минимальная вместимость (опционально)
	Features        []string // Требуемое оснащение
}

// Response найденные комнаты и окно, на которое они свободны
type Response struct {
	Window domain.TimeWindow
	Rooms  []domain.Room
}
