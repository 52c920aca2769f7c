package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default window policy values
const (
	DefaultMinDurationMinutes = 15
)

// Validation failure reasons shown to the user as-is
const (
	ReasonDurationNotPositive = "duration must be positive"
	ReasonDurationTooLong     = "duration is too long"
	ReasonInvalidDateOrTime   = "invalid date or time"
	ReasonStartInPast         = "start must be in the future"
	ReasonEndBeforeStart      = "end time must be after start time"
	ReasonRoomRequired        = "room is required"
	ReasonUserRequired        = "user is required"
	ReasonBookingRequired     = "booking id is required"
	ReasonOwnerRequired       = "new owner email is required"
	ReasonOwnerInvalid        = "new owner email is invalid"
	ReasonCapacityNegative    = "capacity must not be negative"
	ReasonDenyReasonTooLong   = "deny reason is too long"
	ReasonPageInvalid         = "page must be a number"
	ReasonPageSizeInvalid     = "page size must be a number"
)
