package create_booking

import (
	"strings"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// validateRequest проверяет поля, не относящиеся ко времени
func validateRequest(req *Request) error {
	if req.Room.IsEmpty() {
		return domain.NewValidationError(domain.ReasonRoomRequired)
	}
	if strings.TrimSpace(req.UserID) == "" {
		return domain.NewValidationError(domain.ReasonUserRequired)
	}
	return nil
}
