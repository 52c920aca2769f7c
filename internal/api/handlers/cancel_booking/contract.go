package cancel_booking

import (
	"context"

	cancelBooking "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/cancel_booking"
)

type CancelBookingUseCase interface {
	Execute(ctx context.Context, req *cancelBooking.Request) *cancelBooking.Response
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
