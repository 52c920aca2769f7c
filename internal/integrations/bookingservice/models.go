package bookingservice

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// CreateBookingRequest тело POST /bookings
type CreateBookingRequest struct {
	UserID    string `json:"user_id"`
	RoomID    string `json:"room_id"`
	StartTime string `json:"start_time"` // RFC3339, UTC
	EndTime   string `json:"end_time"`   // RFC3339, UTC
}

// Validate проверяет запрос до отправки
func (r *CreateBookingRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(r.RoomID) == "" {
		return fmt.Errorf("%w: room_id is required", ErrInvalidRequest)
	}
	return validateRange(r.StartTime, r.EndTime)
}

// CreatedBooking ответ сервиса на создание бронирования
// Разные версии сервиса отдают идентификатор в поле id или booking_id
type CreatedBooking struct {
	ID        string `json:"id"`
	BookingID string `json:"booking_id"`
	Status    string `json:"status,omitempty"`
}

// Identifier возвращает идентификатор созданного бронирования
func (b *CreatedBooking) Identifier() string {
	if b.ID != "" {
		return b.ID
	}
	return b.BookingID
}

// RescheduleRequest тело POST /bookings/{id}/reschedule
type RescheduleRequest struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Validate проверяет запрос до отправки
func (r *RescheduleRequest) Validate() error {
	return validateRange(r.StartTime, r.EndTime)
}

// TransferRequest тело POST /bookings/{id}/transfer
type TransferRequest struct {
	NewUserEmail string `json:"new_user_email"`
}

// Validate проверяет запрос до отправки
func (r *TransferRequest) Validate() error {
	if strings.TrimSpace(r.NewUserEmail) == "" {
		return fmt.Errorf("%w: new_user_email is required", ErrInvalidRequest)
	}
	return nil
}

// BookingRecord элемент ответа GET /bookings/mine
type BookingRecord struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	UserID    string    `json:"user_id"`
	RoomID    string    `json:"room_id"`
	RoomName  string    `json:"room_name"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

// Identifier возвращает идентификатор бронирования
func (b *BookingRecord) Identifier() string {
	if b.ID != "" {
		return b.ID
	}
	return b.BookingID
}

// ToDomain конвертирует запись сервиса в доменную модель
func (b *BookingRecord) ToDomain() (domain.BookedPeriod, error) {
	if b.Identifier() == "" {
		return domain.BookedPeriod{}, fmt.Errorf("%w: booking has no id", ErrUnavailable)
	}
	window, err := domain.NewTimeWindow(b.StartTime, b.EndTime)
	if err != nil {
		return domain.BookedPeriod{}, err
	}
	return domain.BookedPeriod{
		BookingID: b.Identifier(),
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		RoomName:  b.RoomName,
		Status:    domain.BookingStatus(strings.ToLower(b.Status)),
		Window:    window,
	}, nil
}

// ErrorResponse модель ошибки от сервиса бронирований
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (e ErrorResponse) text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

func validateRange(start, end string) error {
	s, err := parseUTC(start)
	if err != nil {
		return fmt.Errorf("%w: start_time: %v", ErrInvalidRequest, err)
	}
	e, err := parseUTC(end)
	if err != nil {
		return fmt.Errorf("%w: end_time: %v", ErrInvalidRequest, err)
	}
	if !s.Before(e) {
		return fmt.Errorf("%w: end_time must be after start_time", ErrInvalidRequest)
	}
	return nil
}

func parseUTC(value string) (time.Time, error) {
	if !strings.HasSuffix(value, "Z") {
		return time.Time{}, fmt.Errorf("%q is not a UTC instant", value)
	}
	return time.Parse(time.RFC3339, value)
}

// DecisionRequest тело POST /approvals/{id}/approve и /approvals/{id}/deny
type DecisionRequest struct {
	Reason string `json:"reason,omitempty"`
}

// DecisionResponse ответ сервиса согласований на решение
type DecisionResponse struct {
	Success *bool `json:"success"`
}

type pendingList struct {
	Pending []PendingApproval `json:"pending"`
}

// PendingApproval элемент ответа GET /approvals/pending
type PendingApproval struct {
	BookingID string    `json:"booking_id"`
	RoomID    string    `json:"room_id"`
	RoomName  string    `json:"room_name"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Start     Timestamp `json:"start"`
	End       Timestamp `json:"end"`
}

// ToDomain конвертирует запись сервиса согласований в доменную модель
func (p *PendingApproval) ToDomain() (domain.ApprovalRequest, error) {
	if strings.TrimSpace(p.BookingID) == "" {
		return domain.ApprovalRequest{}, fmt.Errorf("%w: pending booking has no id", ErrUnavailable)
	}
	window, err := domain.NewTimeWindow(p.Start.Time, p.End.Time)
	if err != nil {
		return domain.ApprovalRequest{}, err
	}
	return domain.ApprovalRequest{
		Period: domain.BookedPeriod{
			BookingID: p.BookingID,
			UserID:    p.UserID,
			RoomID:    p.RoomID,
			RoomName:  strings.TrimSpace(p.RoomName),
			Status:    domain.BookingStatusPending,
			Window:    window,
		},
		UserName: strings.TrimSpace(p.UserName),
	}, nil
}

// Timestamp момент времени в виде RFC3339 строки или protobuf Timestamp {"seconds": N, "nanos": M}
type Timestamp struct {
	time.Time
}

// UnmarshalJSON реализует json.Unmarshaler
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == "" {
		t.Time = time.Time{}
		return nil
	}

	if strings.HasPrefix(raw, "{") {
		var pb struct {
			Seconds int64 `json:"seconds"`
			Nanos   int64 `json:"nanos"`
		}
		if err := json.Unmarshal(data, &pb); err != nil {
			return err
		}
		if pb.Seconds == 0 && pb.Nanos == 0 {
			t.Time = time.Time{}
			return nil
		}
		t.Time = time.Unix(pb.Seconds, pb.Nanos).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}
