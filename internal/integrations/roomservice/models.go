package roomservice

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// Room модель комнаты из RoomService
type Room struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Capacity *int     `json:"capacity,omitempty"`
	Features []string `json:"features,omitempty"`
}

// ToDomain конвертирует модель сервиса в доменную
func (r Room) ToDomain() domain.Room {
	return domain.Room{
		ID:       r.ID,
		Name:     r.Name,
		Capacity: r.Capacity,
		Features: r.Features,
	}
}

// roomList принимает как голый массив, так и обертку {"rooms": [...]}
type roomList []Room

func (l *roomList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var rooms []Room
		if err := json.Unmarshal(data, &rooms); err != nil {
			return err
		}
		*l = rooms
		return nil
	}

	var wrapped struct {
		Rooms *[]Room `json:"rooms"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if wrapped.Rooms == nil {
		return fmt.Errorf("response has no rooms field")
	}
	*l = *wrapped.Rooms
	return nil
}

func (l roomList) toDomain() []domain.Room {
	rooms := make([]domain.Room, 0, len(l))
	for _, r := range l {
		if strings.TrimSpace(r.ID) == "" {
			continue
		}
		rooms = append(rooms, r.ToDomain())
	}
	return rooms
}

// Booking модель бронирования из расписания комнаты
// Разные версии сервиса отдают идентификатор в поле id или booking_id
type Booking struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	UserID    string    `json:"user_id"`
	RoomID    string    `json:"room_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

// Identifier возвращает идентификатор бронирования
func (b Booking) Identifier() string {
	if b.ID != "" {
		return b.ID
	}
	return b.BookingID
}

// ToDomain конвертирует модель сервиса в доменную
// roomID подставляется, если сервис не вернул room_id
func (b Booking) ToDomain(roomID string) (domain.BookedPeriod, error) {
	window, err := domain.NewTimeWindow(b.StartTime, b.EndTime)
	if err != nil {
		return domain.BookedPeriod{}, err
	}
	if b.RoomID != "" {
		roomID = b.RoomID
	}
	return domain.BookedPeriod{
		BookingID: b.Identifier(),
		UserID:    b.UserID,
		RoomID:    roomID,
		Status:    domain.BookingStatus(strings.ToLower(b.Status)),
		Window:    window,
	}, nil
}

// bookingList принимает как голый массив, так и обертку {"bookings": [...]}
type bookingList []Booking

func (l *bookingList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var bookings []Booking
		if err := json.Unmarshal(data, &bookings); err != nil {
			return err
		}
		*l = bookings
		return nil
	}

	var wrapped struct {
		Bookings *[]Booking `json:"bookings"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	if wrapped.Bookings == nil {
		return fmt.Errorf("response has no bookings field")
	}
	*l = *wrapped.Bookings
	return nil
}
