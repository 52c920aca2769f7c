package notificationservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notificationservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("notificationservice client: invalid response")

	// ErrUnavailable возвращается при сетевой ошибке, таймауте или 5xx
	ErrUnavailable = errors.New("notificationservice client: service unavailable")

	// ErrRejected возвращается, когда сервис отказал в запросе (4xx)
	ErrRejected = errors.New("notificationservice client: request rejected")
)
