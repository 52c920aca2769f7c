package bookingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/session"
)

const (
	metricsTarget   = "booking_service"
	maxErrorBodyLen = 64 << 10
)

// Client клиент для работы с сервисом бронирований
// Каждый вызов делает ровно один HTTP запрос, повторов нет
type Client struct {
	baseURL    string
	target     string
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса бронирований
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		target:  metricsTarget,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: nopMetrics{},
		log:     log,
	}
}

// WithMetrics включает учет исходящих вызовов
func (c *Client) WithMetrics(m MetricsRecorder) *Client {
	if m != nil {
		c.metrics = m
	}
	return c
}

// WithTarget задает имя сервиса в метриках и логах
// Используется для клиента сервиса согласований, который говорит на том же протоколе
func (c *Client) WithTarget(target string) *Client {
	if target != "" {
		c.target = target
	}
	return c
}

// CreateBooking создает бронирование
func (c *Client) CreateBooking(ctx context.Context, req *CreateBookingRequest) (*CreatedBooking, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var created CreatedBooking
	if err := c.do(ctx, "create_booking", http.MethodPost, "/bookings", req, &created); err != nil {
		return nil, err
	}

	if created.Identifier() == "" {
		return nil, fmt.Errorf("%w: response has no booking id", ErrUnavailable)
	}

	c.log.Info("BookingService: created booking id=%s room=%s", created.Identifier(), req.RoomID)
	return &created, nil
}

// RescheduleBooking переносит бронирование на новое окно
func (c *Client) RescheduleBooking(ctx context.Context, bookingID string, req *RescheduleRequest) error {
	if strings.TrimSpace(bookingID) == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidRequest)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	return c.do(ctx, "reschedule_booking", http.MethodPost, bookingPath(bookingID, "reschedule"), req, nil)
}

// TransferBooking передает бронирование другому пользователю
func (c *Client) TransferBooking(ctx context.Context, bookingID string, req *TransferRequest) error {
	if strings.TrimSpace(bookingID) == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidRequest)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	return c.do(ctx, "transfer_booking", http.MethodPost, bookingPath(bookingID, "transfer"), req, nil)
}

// CancelBooking отменяет бронирование
func (c *Client) CancelBooking(ctx context.Context, bookingID string) error {
	if strings.TrimSpace(bookingID) == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidRequest)
	}
	return c.do(ctx, "cancel_booking", http.MethodPost, bookingPath(bookingID, "cancel"), nil, nil)
}

// ListUserBookings получает бронирования вызывающего пользователя (GET /bookings/mine)
// Пользователь определяется сервисом по bearer token из контекста
// Записи с неразборчивым окном пропускаются
func (c *Client) ListUserBookings(ctx context.Context) ([]domain.BookedPeriod, error) {
	var records []BookingRecord
	if err := c.do(ctx, "list_user_bookings", http.MethodGet, "/bookings/mine", nil, &records); err != nil {
		return nil, err
	}

	periods := make([]domain.BookedPeriod, 0, len(records))
	for _, rec := range records {
		period, err := rec.ToDomain()
		if err != nil {
			c.log.Warn("BookingService: skip booking id=%s: %v", rec.Identifier(), err)
			continue
		}
		periods = append(periods, period)
	}

	c.log.Info("BookingService: listed %d bookings", len(periods))
	return periods, nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	session.SetOutgoingHeaders(req)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveIntegration(c.target, operation, "unavailable", time.Since(started))
		c.log.Error("%s: %s %s failed: %v", c.target, method, path, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		c.metrics.ObserveIntegration(c.target, operation, "ok", time.Since(started))
		return decodeBody(resp.Body, out)

	case resp.StatusCode >= 400 && resp.StatusCode < 500 && !isTransientStatus(resp.StatusCode):
		c.metrics.ObserveIntegration(c.target, operation, "rejected", time.Since(started))
		rejected := &RejectedError{
			StatusCode: resp.StatusCode,
			Message:    readErrorMessage(resp),
		}
		c.log.Warn("%s: %s %s rejected: status=%d message=%q", c.target, method, path, resp.StatusCode, rejected.Message)
		return rejected

	default:
		c.metrics.ObserveIntegration(c.target, operation, "unavailable", time.Since(started))
		msg := readErrorMessage(resp)
		c.log.Error("%s: %s %s unexpected status %d: %s", c.target, method, path, resp.StatusCode, msg)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrUnavailable, resp.StatusCode, msg)
	}
}

// isTransientStatus 408 и 429 означают таймаут или перегрузку сервиса, а не отказ по правилам бронирования
func isTransientStatus(code int) bool {
	return code == http.StatusRequestTimeout || code == http.StatusTooManyRequests
}

func decodeBody(r io.Reader, out interface{}) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, r)
		return nil
	}
	if err := json.NewDecoder(r).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty response body", ErrUnavailable)
		}
		return fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}
	return nil
}

// readErrorMessage достает текст ошибки из {"error": "..."} или {"message": "..."}
func readErrorMessage(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))

	var payload ErrorResponse
	if err := json.Unmarshal(raw, &payload); err == nil && payload.text() != "" {
		return payload.text()
	}
	if text := strings.TrimSpace(string(raw)); text != "" && !strings.HasPrefix(text, "{") {
		return text
	}
	return strings.ToLower(http.StatusText(resp.StatusCode))
}

func bookingPath(bookingID, action string) string {
	return fmt.Sprintf("/bookings/%s/%s", url.PathEscape(bookingID), action)
}
