package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingStatus is the lifecycle status reported by the booking service
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusApproved  BookingStatus = "approved"
	BookingStatusDenied    BookingStatus = "denied"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// ReasonStatusInvalid is returned for an unknown status filter
const ReasonStatusInvalid = "status must be one of pending, approved, denied, cancelled"

// ParseBookingStatus accepts a known status in any case
func ParseBookingStatus(raw string) (BookingStatus, error) {
	status := BookingStatus(strings.ToLower(strings.TrimSpace(raw)))
	switch status {
	case BookingStatusPending, BookingStatusApproved, BookingStatusDenied, BookingStatusCancelled:
		return status, nil
	default:
		return "", NewValidationError(ReasonStatusInvalid)
	}
}

// IsActive reports whether a booking in this status occupies its room
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusApproved
}

// BookedPeriod is an existing booking as shown by schedule and listing views
type BookedPeriod struct {
	BookingID string
	UserID    string
	RoomID    string
	RoomName  string
	Status    BookingStatus
	Window    TimeWindow
}

// NewTimeWindow wraps two instants received from an upstream service
// The instants are trusted as-is apart from ordering; no policy applies.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if start.IsZero() || end.IsZero() {
		return TimeWindow{}, NewValidationError(ReasonInvalidDateOrTime)
	}
	if !start.Before(end) {
		return TimeWindow{}, NewValidationError(ReasonEndBeforeStart)
	}
	return TimeWindow{start: start.UTC(), end: end.UTC()}, nil
}

// BuildDay returns the span from midnight of date to the next midnight in policy.Location
func BuildDay(date string, policy WindowPolicy) (TimeWindow, error) {
	day, err := time.ParseInLocation(DateFormat, strings.TrimSpace(date), policy.location())
	if err != nil {
		return TimeWindow{}, NewValidationError(ReasonInvalidDateOrTime)
	}
	return TimeWindow{start: day.UTC(), end: day.AddDate(0, 0, 1).UTC()}, nil
}

// Contains reports whether instant t falls inside the half-open window
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.start) && t.Before(w.end)
}

func (p BookedPeriod) String() string {
	return fmt.Sprintf("%s[%s %s]", p.BookingID, p.Status, p.Window)
}
