package roomservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("roomservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("roomservice client: invalid response")

	// ErrUnavailable возвращается при сетевой ошибке или таймауте
	ErrUnavailable = errors.New("roomservice client: service unavailable")

	// ErrRoomNotFound возвращается, когда сервис не знает комнату (404)
	ErrRoomNotFound = errors.New("roomservice client: room not found")
)
