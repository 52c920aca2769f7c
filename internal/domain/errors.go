package domain

import (
	"errors"
	"fmt"
)

// ErrValidation matches every *ValidationError via errors.Is
var ErrValidation = errors.New("domain: validation failed")

// ErrInvalidTransition is returned when a submission is moved along an edge that does not exist
var ErrInvalidTransition = errors.New("domain: invalid submission state transition")

// ValidationError is a local input failure; it is never sent to the network
type ValidationError struct {
	Reason string
}

// NewValidationError creates a ValidationError with a user-facing reason
func NewValidationError(reason string) *ValidationError {
	return &ValidationError{Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationReason extracts the reason of a ValidationError anywhere in the chain
func ValidationReason(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}
