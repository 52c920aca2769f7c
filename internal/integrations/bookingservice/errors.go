package bookingservice

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest возвращается, если запрос не прошел проверку до отправки
	ErrInvalidRequest = errors.New("bookingservice client: invalid request")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingservice client: internal error")

	// ErrUnavailable возвращается при сетевой ошибке, таймауте, 5xx или нечитаемом ответе
	ErrUnavailable = errors.New("bookingservice client: service unavailable")

	// ErrRejected сопоставляется с любым *RejectedError через errors.Is
	ErrRejected = errors.New("bookingservice client: request rejected")
)

// RejectedError отказ сервиса бронирований по бизнес-правилу (ответ 4xx)
type RejectedError struct {
	StatusCode int
	Message    string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("bookingservice client: rejected with status %d: %s", e.StatusCode, e.Message)
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}
