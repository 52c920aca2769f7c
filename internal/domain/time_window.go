package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/JJnvn/Software-Arch-CPRoom/pkg/types"
)

// TimeWindow is a validated [start, end) reservation span in UTC
// Fields are unexported so a window cannot change after validation
type TimeWindow struct {
	start time.Time
	end   time.Time
}

// WindowPolicy controls how raw form input is turned into a TimeWindow
type WindowPolicy struct {
	// RequireFuture rejects windows starting before Now
	RequireFuture bool
	// Now is the caller's clock reading; the builder never reads the wall clock itself
	Now time.Time
	// Location the date and clock time are entered in; nil means UTC
	Location *time.Location
	// MinDurationMinutes is enforced after positivity; 0 disables it
	MinDurationMinutes int
}

// Start returns the inclusive start instant (UTC)
func (w TimeWindow) Start() time.Time { return w.start }

// End returns the exclusive end instant (UTC)
func (w TimeWindow) End() time.Time { return w.end }

// Duration returns end - start
func (w TimeWindow) Duration() time.Duration { return w.end.Sub(w.start) }

// IsZero reports whether the window was never built
func (w TimeWindow) IsZero() bool { return w.start.IsZero() && w.end.IsZero() }

// StartISO formats the start as an ISO-8601 instant with explicit UTC designation
func (w TimeWindow) StartISO() string { return w.start.Format(time.RFC3339) }

// EndISO formats the end as an ISO-8601 instant with explicit UTC designation
func (w TimeWindow) EndISO() string { return w.end.Format(time.RFC3339) }

func (w TimeWindow) String() string {
	return fmt.Sprintf("%s/%s", w.StartISO(), w.EndISO())
}

// Overlaps reports whether two half-open windows share any instant
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

// maxDurationMinutes is the longest duration whose nanosecond count fits in time.Duration
const maxDurationMinutes = math.MaxInt64 / int64(time.Minute)

var errClockInGap = errors.New("clock time does not exist on this date")

// BuildWindow combines a calendar date, a clock time and a duration into a TimeWindow.
// Checks run in a fixed order and the first failure is returned:
// duration positivity, duration bounds, parsing, future start, ordering.
func BuildWindow(date, startTime string, durationMinutes int, policy WindowPolicy) (TimeWindow, error) {
	if durationMinutes <= 0 {
		return TimeWindow{}, NewValidationError(ReasonDurationNotPositive)
	}
	if int64(durationMinutes) > maxDurationMinutes {
		return TimeWindow{}, NewValidationError(ReasonDurationTooLong)
	}
	if err := policy.checkMinimum(durationMinutes); err != nil {
		return TimeWindow{}, err
	}

	start, err := combine(date, startTime, policy.location())
	if err != nil {
		return TimeWindow{}, NewValidationError(ReasonInvalidDateOrTime)
	}
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	return finish(start, end, policy)
}

// BuildRange builds a window from independently entered start and end clock times on one date.
// Used by the reschedule flow; an end at or before the start is rejected, there is no wrap past midnight.
// The minimum duration is checked last, after ordering.
func BuildRange(date, startTime, endTime string, policy WindowPolicy) (TimeWindow, error) {
	loc := policy.location()

	start, err := combine(date, startTime, loc)
	if err != nil {
		return TimeWindow{}, NewValidationError(ReasonInvalidDateOrTime)
	}
	end, err := combine(date, endTime, loc)
	if err != nil {
		return TimeWindow{}, NewValidationError(ReasonInvalidDateOrTime)
	}

	window, err := finish(start, end, policy)
	if err != nil {
		return TimeWindow{}, err
	}
	if err := policy.checkMinimum(int(window.Duration() / time.Minute)); err != nil {
		return TimeWindow{}, err
	}
	return window, nil
}

func finish(start, end time.Time, policy WindowPolicy) (TimeWindow, error) {
	if policy.RequireFuture && start.Before(policy.Now) {
		return TimeWindow{}, NewValidationError(ReasonStartInPast)
	}
	if !start.Before(end) {
		return TimeWindow{}, NewValidationError(ReasonEndBeforeStart)
	}
	return TimeWindow{start: start.UTC(), end: end.UTC()}, nil
}

func combine(date, clock string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateFormat, strings.TrimSpace(date), loc)
	if err != nil {
		return time.Time{}, err
	}
	ts, err := types.NewTimeStringFromString(clock)
	if err != nil {
		return time.Time{}, err
	}
	minutes, err := ts.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	at := time.Date(day.Year(), day.Month(), day.Day(), minutes/60, minutes%60, 0, 0, loc)
	// a clock time skipped by a DST change is normalized by time.Date to another hour
	if shown, _ := types.NewTimeString(at).Minutes(); shown != minutes {
		return time.Time{}, errClockInGap
	}
	return at, nil
}

func (p WindowPolicy) checkMinimum(durationMinutes int) error {
	if p.MinDurationMinutes > 0 && durationMinutes < p.MinDurationMinutes {
		return NewValidationError(fmt.Sprintf("duration must be at least %d minutes", p.MinDurationMinutes))
	}
	return nil
}

func (p WindowPolicy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}
