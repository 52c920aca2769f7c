package get_room_schedule

import "errors"

var (
	// ErrRoomNotFound возвращается, когда источник не знает комнату
	ErrRoomNotFound = errors.New("get_room_schedule: room not found")

	// ErrScheduleUnavailable возвращается, когда источник расписания не ответил
	ErrScheduleUnavailable = errors.New("get_room_schedule: schedule source unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_room_schedule: internal error")
)
