package bookings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrRejected возвращается, когда сервис бронирований или согласований отказал в запросе (4xx)
	ErrRejected = errors.New("bookings: rejected by remote service")

	// ErrUnavailable возвращается, когда сервис не ответил или не настроен
	ErrUnavailable = errors.New("bookings: remote service unavailable")
)
