package deny_booking

import (
	"strings"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// validateRequest возвращает нормализованные идентификатор и причину
func validateRequest(req *Request) (string, string, error) {
	bookingID := strings.TrimSpace(req.BookingID)
	if bookingID == "" {
		return "", "", domain.NewValidationError(domain.ReasonBookingRequired)
	}
	reason, err := domain.NormalizeDenyReason(req.Reason)
	if err != nil {
		return "", "", err
	}
	return bookingID, reason, nil
}
