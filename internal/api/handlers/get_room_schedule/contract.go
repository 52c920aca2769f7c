package get_room_schedule

import (
	"context"

	getRoomSchedule "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/get_room_schedule"
)

type GetRoomScheduleUseCase interface {
	Execute(ctx context.Context, req *getRoomSchedule.Request) (*getRoomSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
