package submission

import (
	"errors"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/bookingservice"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/service/rooms"
)

// reasonRejectedLocally причина для запроса, который клиент отказался отправлять
const reasonRejectedLocally = "request is incomplete"

// Classify сводит любую ошибку ядра или клиентов к итогу отправки
// nil считается успехом без идентификатора
func Classify(err error) domain.Outcome {
	if err == nil {
		return domain.Success("")
	}

	if reason, ok := domain.ValidationReason(err); ok {
		return domain.ValidationFailure(reason)
	}

	switch {
	case errors.Is(err, rooms.ErrRoomNotFound):
		return domain.RoomNotFound()
	case errors.Is(err, rooms.ErrRoomAmbiguous):
		return domain.RoomAmbiguous()
	case errors.Is(err, bookingservice.ErrInvalidRequest):
		return domain.ValidationFailure(reasonRejectedLocally)
	}

	var rejected *bookingservice.RejectedError
	if errors.As(err, &rejected) {
		return domain.RemoteRejected(rejected.Message)
	}

	// ErrUnavailable, ErrDirectoryUnavailable, отмена контекста и все прочее
	return domain.RemoteUnavailable(err)
}
