package get_room_schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RoomID) == "" {
		return domain.NewValidationError(domain.ReasonRoomRequired)
	}
	return nil
}

// validateHours проверяет рабочие часы при создании use case
func validateHours(hours Hours) error {
	if err := hours.Open.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrInternal, err)
	}
	if err := hours.Close.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrInternal, err)
	}
	if !hours.Open.IsBefore(hours.Close) {
		return fmt.Errorf("%w: open time %s must be before close time %s", ErrInternal, hours.Open, hours.Close)
	}
	if hours.SlotMinutes <= 0 {
		return fmt.Errorf("%w: slot duration must be positive", ErrInternal)
	}
	if hours.AdvanceDays < 0 {
		return fmt.Errorf("%w: advance days must not be negative", ErrInternal)
	}
	return nil
}

// validateDate проверяет, что день не дальше ограничения advanceDays
func validateDate(day domain.TimeWindow, now time.Time, loc *time.Location, advanceDays int) error {
	// Если advanceDays = 0, нет ограничений на дату
	if advanceDays == 0 {
		return nil
	}

	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	maxDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, advanceDays)
	if day.Start().After(maxDay) {
		return domain.NewValidationError(fmt.Sprintf("schedule is available only %d days ahead", advanceDays))
	}
	return nil
}
