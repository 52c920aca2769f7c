package search_rooms

import (
	searchRooms "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/search_rooms"
)

// RoomResponse HTTP модель комнаты
type RoomResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Capacity *int     `json:"capacity,omitempty"`
	Features []string `json:"features,omitempty"`
}

// SearchRoomsResponse HTTP response model
type SearchRoomsResponse struct {
	Start string         `json:"start"`
	End   string         `json:"end"`
	Rooms []RoomResponse `json:"rooms"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchRooms.Response) *SearchRoomsResponse {
	rooms := make([]RoomResponse, 0, len(resp.Rooms))
	for _, r := range resp.Rooms {
		rooms = append(rooms, RoomResponse{
			ID:       r.ID,
			Name:     r.Name,
			Capacity: r.Capacity,
			Features: r.Features,
		})
	}
	return &SearchRoomsResponse{
		Start: resp.Window.StartISO(),
		End:   resp.Window.EndISO(),
		Rooms: rooms,
	}
}
