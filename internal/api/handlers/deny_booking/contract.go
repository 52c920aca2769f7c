package deny_booking

import (
	"context"

	denyBooking "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/deny_booking"
)

type DenyBookingUseCase interface {
	Execute(ctx context.Context, req *denyBooking.Request) *denyBooking.Response
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
