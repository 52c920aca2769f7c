package notifications

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("notifications: invalid input data")

	// ErrRejected возвращается, когда сервис уведомлений отказал в запросе (4xx)
	ErrRejected = errors.New("notifications: rejected by notification service")

	// ErrUnavailable возвращается, когда сервис уведомлений не ответил или не настроен
	ErrUnavailable = errors.New("notifications: notification service unavailable")
)
