package create_booking

import "errors"

var (
	// ErrNoBookingID возвращается, когда сервис подтвердил создание, но не вернул идентификатор
	ErrNoBookingID = errors.New("create_booking: booking service returned no id")
)
