package bookingservice

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JJnvn/Software-Arch-CPRoom/pkg/logger"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/session"
)

type recordedCall struct {
	method string
	path   string
	auth   string
	reqID  string
	body   map[string]interface{}
}

func newServer(t *testing.T, status int, response string, calls *[]recordedCall) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call := recordedCall{
			method: r.Method,
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			reqID:  r.Header.Get("X-Request-ID"),
		}
		_ = json.NewDecoder(r.Body).Decode(&call.body)
		*calls = append(*calls, call)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func validCreate() *CreateBookingRequest {
	return &CreateBookingRequest{
		UserID:    "u-42",
		RoomID:    "R1",
		StartTime: "2025-06-02T09:00:00Z",
		EndTime:   "2025-06-02T10:00:00Z",
	}
}

type metricsSpy struct {
	results []string
}

func (m *metricsSpy) ObserveIntegration(target, operation, result string, elapsed time.Duration) {
	m.results = append(m.results, operation+":"+result)
}

func TestCreateBooking_Success(t *testing.T) {
	var calls []recordedCall
	srv := newServer(t, http.StatusCreated, `{"id":"B-100","status":"pending"}`, &calls)
	spy := &metricsSpy{}
	client := NewClient(srv.URL+"/", time.Second, logger.Nop()).WithMetrics(spy)

	ctx := session.WithIdentity(context.Background(), session.Identity{UserID: "u-42", Token: "tok", RequestID: "req-1"})
	created, err := client.CreateBooking(ctx, validCreate())

	require.NoError(t, err)
	assert.Equal(t, "B-100", created.Identifier())
	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodPost, calls[0].method)
	assert.Equal(t, "/bookings", calls[0].path)
	assert.Equal(t, "Bearer tok", calls[0].auth)
	assert.Equal(t, "req-1", calls[0].reqID)
	assert.Equal(t, map[string]interface{}{
		"user_id":    "u-42",
		"room_id":    "R1",
		"start_time": "2025-06-02T09:00:00Z",
		"end_time":   "2025-06-02T10:00:00Z",
	}, calls[0].body)
	assert.Equal(t, []string{"create_booking:ok"}, spy.results)
}

func TestCreateBooking_BookingIDField(t *testing.T) {
	var calls []recordedCall
	srv := newServer(t, http.StatusOK, `{"booking_id":"B-7"}`, &calls)
	client := NewClient(srv.URL, time.Second, logger.Nop())

	created, err := client.CreateBooking(context.Background(), validCreate())

	require.NoError(t, err)
	assert.Equal(t, "B-7", created.Identifier())
}

func TestCreateBooking_Conflict(t *testing.T) {
	var calls []recordedCall
	srv := newServer(t, http.StatusConflict, `{"error":"Room already booked for this time"}`, &calls)
	client := NewClient(srv.URL, time.Second, logger.Nop())

	created, err := client.CreateBooking(context.Background(), validCreate())

	assert.Nil(t, created)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRejected)

	var rejected *RejectedError
	require.True(t, errors.As(err, &rejected))
	assert.Equal(t, http.StatusConflict, rejected.StatusCode)
	assert.Equal(t, "Room already booked for this time", rejected.Message)
	assert.Len(t, calls, 1)
}

func TestCreateBooking_RejectedMessageFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{name: "message field", status: http.StatusBadRequest, body: `{"message":"invalid room"}`, expected: "invalid room"},
		{name: "empty body", status: http.StatusForbidden, body: ``, expected: "forbidden"},
		{name: "plain text", status: http.StatusUnprocessableEntity, body: `slot taken`, expected: "slot taken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []recordedCall
			srv := newServer(t, tt.status, tt.body, &calls)
			client := NewClient(srv.URL, time.Second, logger.Nop())

			_, err := client.CreateBooking(context.Background(), validCreate())

			var rejected *RejectedError
			require.True(t, errors.As(err, &rejected))
			assert.Equal(t, tt.status, rejected.StatusCode)
			assert.Equal(t, tt.expected, rejected.Message)
		})
	}
}

func TestCreateBooking_Unavailable(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"boom"}`},
		{name: "bad gateway", status: http.StatusBadGateway, body: ``},
		{name: "request timeout", status: http.StatusRequestTimeout, body: `{"error":"timeout"}`},
		{name: "too many requests", status: http.StatusTooManyRequests, body: `{"error":"slow down"}`},
		{name: "no id in 2xx", status: http.StatusCreated, body: `{}`},
		{name: "undecodable 2xx", status: http.StatusCreated, body: `not json`},
		{name: "empty 2xx", status: http.StatusCreated, body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []recordedCall
			srv := newServer(t, tt.status, tt.body, &calls)
			client := NewClient(srv.URL, time.Second, logger.Nop())

			created, err := client.CreateBooking(context.Background(), validCreate())

			assert.Nil(t, created)
			assert.ErrorIs(t, err, ErrUnavailable)
			assert.NotErrorIs(t, err, ErrRejected)
			assert.Len(t, calls, 1)
		})
	}
}

func TestCreateBooking_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()
	client := NewClient(srv.URL, 20*time.Millisecond, logger.Nop())

	_, err := client.CreateBooking(context.Background(), validCreate())

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCreateBooking_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	client := NewClient(url, time.Second, logger.Nop())

	_, err := client.CreateBooking(context.Background(), validCreate())

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCreateBooking_InvalidRequestNeverSent(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *CreateBookingRequest)
	}{
		{name: "no user", mutate: func(r *CreateBookingRequest) { r.UserID = "" }},
		{name: "no room", mutate: func(r *CreateBookingRequest) { r.RoomID = " " }},
		{name: "local time", mutate: func(r *CreateBookingRequest) { r.StartTime = "2025-06-02T09:00:00+07:00" }},
		{name: "inverted", mutate: func(r *CreateBookingRequest) { r.EndTime = "2025-06-02T08:00:00Z" }},
		{name: "garbage", mutate: func(r *CreateBookingRequest) { r.EndTime = "tomorrow" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []recordedCall
			srv := newServer(t, http.StatusCreated, `{"id":"x"}`, &calls)
			client := NewClient(srv.URL, time.Second, logger.Nop())

			req := validCreate()
			tt.mutate(req)
			_, err := client.CreateBooking(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidRequest)
			assert.Empty(t, calls)
		})
	}
}

func TestRescheduleTransferCancel(t *testing.T) {
	var calls []recordedCall
	srv := newServer(t, http.StatusOK, `{"status":"ok"}`, &calls)
	client := NewClient(srv.URL, time.Second, logger.Nop())
	ctx := context.Background()

	require.NoError(t, client.RescheduleBooking(ctx, "B-1", &RescheduleRequest{
		StartTime: "2025-06-03T13:00:00Z",
		EndTime:   "2025-06-03T14:30:00Z",
	}))
	require.NoError(t, client.TransferBooking(ctx, "B-1", &TransferRequest{NewUserEmail: "bob@example.com"}))
	require.NoError(t, client.CancelBooking(ctx, "B-1"))

	require.Len(t, calls, 3)
	assert.Equal(t, "/bookings/B-1/reschedule", calls[0].path)
	assert.Equal(t, "2025-06-03T13:00:00Z", calls[0].body["start_time"])
	assert.Equal(t, "/bookings/B-1/transfer", calls[1].path)
	assert.Equal(t, "bob@example.com", calls[1].body["new_user_email"])
	assert.Equal(t, "/bookings/B-1/cancel", calls[2].path)
	assert.Nil(t, calls[2].body)
}

func TestCancelBooking_TransientStatusIsUnavailable(t *testing.T) {
	for _, status := range []int{http.StatusRequestTimeout, http.StatusTooManyRequests} {
		var calls []recordedCall
		srv := newServer(t, status, `{"error":"try later"}`, &calls)
		client := NewClient(srv.URL, time.Second, logger.Nop())

		err := client.CancelBooking(context.Background(), "B-1")

		assert.ErrorIs(t, err, ErrUnavailable, "status %d", status)
		var rejected *RejectedError
		assert.False(t, errors.As(err, &rejected), "status %d", status)
	}
}

func TestBookingID_Required(t *testing.T) {
	var calls []recordedCall
	srv := newServer(t, http.StatusOK, `{}`, &calls)
	client := NewClient(srv.URL, time.Second, logger.Nop())
	ctx := context.Background()

	assert.ErrorIs(t, client.CancelBooking(ctx, ""), ErrInvalidRequest)
	assert.ErrorIs(t, client.TransferBooking(ctx, " ", &TransferRequest{NewUserEmail: "a@b.co"}), ErrInvalidRequest)
	assert.ErrorIs(t, client.TransferBooking(ctx, "B-1", &TransferRequest{}), ErrInvalidRequest)
	assert.Empty(t, calls)
}

func TestListUserBookings(t *testing.T) {
	var calls []recordedCall
	srv := newServer(t, http.StatusOK, `[
		{"booking_id":"B1","user_id":"u-42","room_id":"R1","room_name":"Phoenix",
		 "start_time":"2025-06-02T09:00:00Z","end_time":"2025-06-02T10:00:00Z","status":"Pending"},
		{"id":"B2","room_id":"R2","start_time":"2025-06-03T09:00:00Z","end_time":"2025-06-03T08:00:00Z","status":"approved"},
		{"room_id":"R3","start_time":"2025-06-04T09:00:00Z","end_time":"2025-06-04T10:00:00Z","status":"approved"}
	]`, &calls)
	client := NewClient(srv.URL, time.Second, logger.Nop())
	ctx := session.WithIdentity(context.Background(), session.Identity{UserID: "u-42", Token: "tok"})

	bookings, err := client.ListUserBookings(ctx)

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "B1", bookings[0].BookingID)
	assert.Equal(t, "Phoenix", bookings[0].RoomName)
	assert.Equal(t, "pending", string(bookings[0].Status))
	assert.Equal(t, "2025-06-02T09:00:00Z", bookings[0].Window.StartISO())

	require.Len(t, calls, 1)
	assert.Equal(t, http.MethodGet, calls[0].method)
	assert.Equal(t, "/bookings/mine", calls[0].path)
	assert.Equal(t, "Bearer tok", calls[0].auth)
}

func TestListUserBookings_Errors(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		var calls []recordedCall
		srv := newServer(t, http.StatusUnauthorized, `{"error":"missing token"}`, &calls)
		_, err := NewClient(srv.URL, time.Second, logger.Nop()).ListUserBookings(context.Background())

		var rejected *RejectedError
		require.True(t, errors.As(err, &rejected))
		assert.Equal(t, "missing token", rejected.Message)
	})

	t.Run("bad body", func(t *testing.T) {
		var calls []recordedCall
		srv := newServer(t, http.StatusOK, `{"bookings":"nope"}`, &calls)
		_, err := NewClient(srv.URL, time.Second, logger.Nop()).ListUserBookings(context.Background())
		assert.ErrorIs(t, err, ErrUnavailable)
	})
}
