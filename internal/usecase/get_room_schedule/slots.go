package get_room_schedule

import (
	"errors"
	"sort"
	"time"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/types"
)

// generateSlots нарезает рабочий день на слоты с фиксированным шагом от времени открытия
// Слоты, начавшиеся раньше now, и слоты, попавшие в перевод часов, отбрасываются
func generateSlots(date string, hours Hours, policy domain.WindowPolicy, now time.Time) ([]domain.TimeWindow, error) {
	policy.RequireFuture = false
	policy.MinDurationMinutes = 0

	slots := make([]domain.TimeWindow, 0)
	current := hours.Open

	for current.IsBefore(hours.Close) {
		slotEnd, err := current.AddMinutes(hours.SlotMinutes)
		if errors.Is(err, types.ErrTimeOverflow) {
			break
		}
		if err != nil {
			return nil, err
		}
		// Слот не должен выходить за время закрытия
		if slotEnd.IsAfter(hours.Close) {
			break
		}

		window, err := domain.BuildRange(date, current.String(), slotEnd.String(), policy)
		if errors.Is(err, domain.ErrValidation) {
			current = slotEnd
			continue
		}
		if err != nil {
			return nil, err
		}
		if !window.Start().Before(now) {
			slots = append(slots, window)
		}
		current = slotEnd
	}

	return slots, nil
}

// markAvailability помечает слоты, не пересекающиеся ни с одним активным бронированием
// Бронирование, которое заканчивается ровно в начале слота (или начинается в его конце), пересечением не считается
func markAvailability(slots []domain.TimeWindow, busy []domain.BookedPeriod) []Slot {
	result := make([]Slot, len(slots))
	for i, window := range slots {
		result[i] = Slot{Window: window, Available: true}
		for _, period := range busy {
			if period.Status.IsActive() && period.Window.Overlaps(window) {
				result[i].Available = false
				break
			}
		}
	}
	return result
}

// activeOnly оставляет бронирования, занимающие комнату, отсортированные по началу
func activeOnly(periods []domain.BookedPeriod) []domain.BookedPeriod {
	result := make([]domain.BookedPeriod, 0, len(periods))
	for _, p := range periods {
		if p.Status.IsActive() {
			result = append(result, p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Window.Start().Before(result[j].Window.Start())
	})
	return result
}
