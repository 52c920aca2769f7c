package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда ни одна комната не совпала по имени
	ErrRoomNotFound = errors.New("rooms: room not found")

	// ErrRoomAmbiguous возвращается, когда имени соответствует больше одной комнаты
	ErrRoomAmbiguous = errors.New("rooms: room name is ambiguous")

	// ErrDirectoryUnavailable возвращается, когда справочник комнат не ответил
	ErrDirectoryUnavailable = errors.New("rooms: directory unavailable")
)
