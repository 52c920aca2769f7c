package domain

import "strings"

// BookingRequest is the finalized create payload.
// It is built once per submission and never mutated; a revision builds a new one.
type BookingRequest struct {
	userID string
	roomID string
	window TimeWindow
}

// NewBookingRequest assembles a request from already validated parts
func NewBookingRequest(userID, roomID string, window TimeWindow) (*BookingRequest, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, NewValidationError(ReasonUserRequired)
	}
	if strings.TrimSpace(roomID) == "" {
		return nil, NewValidationError(ReasonRoomRequired)
	}
	if window.IsZero() {
		return nil, NewValidationError(ReasonInvalidDateOrTime)
	}
	return &BookingRequest{userID: userID, roomID: roomID, window: window}, nil
}

func (r *BookingRequest) UserID() string     { return r.userID }
func (r *BookingRequest) RoomID() string     { return r.roomID }
func (r *BookingRequest) Window() TimeWindow { return r.window }

// RescheduleRequest moves an existing booking to a new window
type RescheduleRequest struct {
	bookingID string
	window    TimeWindow
}

// NewRescheduleRequest assembles a reschedule payload
func NewRescheduleRequest(bookingID string, window TimeWindow) (*RescheduleRequest, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, NewValidationError(ReasonBookingRequired)
	}
	if window.IsZero() {
		return nil, NewValidationError(ReasonInvalidDateOrTime)
	}
	return &RescheduleRequest{bookingID: bookingID, window: window}, nil
}

func (r *RescheduleRequest) BookingID() string  { return r.bookingID }
func (r *RescheduleRequest) Window() TimeWindow { return r.window }

// TransferRequest hands an existing booking to another user identified by email
type TransferRequest struct {
	bookingID     string
	newOwnerEmail string
}

// NewTransferRequest assembles a transfer payload
func NewTransferRequest(bookingID, newOwnerEmail string) (*TransferRequest, error) {
	if strings.TrimSpace(bookingID) == "" {
		return nil, NewValidationError(ReasonBookingRequired)
	}
	email := strings.TrimSpace(newOwnerEmail)
	if email == "" {
		return nil, NewValidationError(ReasonOwnerRequired)
	}
	if !emailPattern.MatchString(email) {
		return nil, NewValidationError(ReasonOwnerInvalid)
	}
	return &TransferRequest{bookingID: bookingID, newOwnerEmail: email}, nil
}

func (r *TransferRequest) BookingID() string     { return r.bookingID }
func (r *TransferRequest) NewOwnerEmail() string { return r.newOwnerEmail }
