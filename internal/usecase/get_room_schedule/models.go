package get_room_schedule

import (
	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/types"
)

// Hours рабочие часы, в которых нарезаются слоты
type Hours struct {
	Open        types.TimeString // начало первого слота, например "08:00"
	Close       types.TimeString // слот не может закончиться позже
	SlotMinutes int              // шаг и длительность слота
	AdvanceDays int              // насколько вперед можно смотреть, 0 - без ограничения
}

// Request модель запроса расписания комнаты
type Request struct {
	RoomID string
	Date   string // YYYY-MM-DD в часовом поясе политики
}

// Response модель ответа с расписанием комнаты на день
type Response struct {
	RoomID string
	Date   string
	Day    domain.TimeWindow
	Busy   []domain.BookedPeriod // активные бронирования, по времени начала
	Slots  []Slot                // слоты рабочего дня, начиная с текущего момента
}

// Slot модель временного слота
type Slot struct {
	Window    domain.TimeWindow
	Available bool
}
