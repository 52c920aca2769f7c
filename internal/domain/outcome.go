package domain

// OutcomeKind tags the variant of an Outcome
type OutcomeKind string

const (
	OutcomeSuccess           OutcomeKind = "success"
	OutcomeValidationFailure OutcomeKind = "validation_failure"
	OutcomeRoomNotFound      OutcomeKind = "room_not_found"
	OutcomeRoomAmbiguous     OutcomeKind = "room_ambiguous"
	OutcomeRemoteRejected    OutcomeKind = "remote_rejected"
	OutcomeRemoteUnavailable OutcomeKind = "remote_unavailable"
)

// Outcome is the normalized result of one submission.
// Only the field matching Kind is meaningful: BookingID for success, Reason for
// validation failures, Message for remote rejections.
type Outcome struct {
	Kind      OutcomeKind
	BookingID string
	Reason    string
	Message   string

	// Err keeps the underlying cause for callers that need to tell a timeout from a 5xx
	Err error
}

func Success(bookingID string) Outcome {
	return Outcome{Kind: OutcomeSuccess, BookingID: bookingID}
}

func ValidationFailure(reason string) Outcome {
	return Outcome{Kind: OutcomeValidationFailure, Reason: reason}
}

func RoomNotFound() Outcome {
	return Outcome{Kind: OutcomeRoomNotFound}
}

func RoomAmbiguous() Outcome {
	return Outcome{Kind: OutcomeRoomAmbiguous}
}

func RemoteRejected(message string) Outcome {
	return Outcome{Kind: OutcomeRemoteRejected, Message: message}
}

func RemoteUnavailable(cause error) Outcome {
	return Outcome{Kind: OutcomeRemoteUnavailable, Err: cause}
}

// IsSuccess reports whether the submission succeeded
func (o Outcome) IsSuccess() bool {
	return o.Kind == OutcomeSuccess
}

// IsLocal reports whether the failure was detected before anything was sent
func (o Outcome) IsLocal() bool {
	switch o.Kind {
	case OutcomeValidationFailure, OutcomeRoomNotFound, OutcomeRoomAmbiguous:
		return true
	}
	return false
}

// FinalState maps the outcome to the state the submission ends in.
// Local failures return to Draft so the form can be corrected.
func (o Outcome) FinalState() SubmissionState {
	switch o.Kind {
	case OutcomeSuccess:
		return StateSucceeded
	case OutcomeRemoteRejected:
		return StateRejected
	case OutcomeRemoteUnavailable:
		return StateUnavailable
	default:
		return StateDraft
	}
}

// Text returns a short human-readable description
func (o Outcome) Text() string {
	switch o.Kind {
	case OutcomeSuccess:
		return "booking submitted"
	case OutcomeValidationFailure:
		return o.Reason
	case OutcomeRoomNotFound:
		return "room not found"
	case OutcomeRoomAmbiguous:
		return "room name matches more than one room"
	case OutcomeRemoteRejected:
		return o.Message
	case OutcomeRemoteUnavailable:
		return "booking service unavailable, try again later"
	default:
		return string(o.Kind)
	}
}
