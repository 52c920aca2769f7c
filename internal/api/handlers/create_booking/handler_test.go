package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	createBooking "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/create_booking"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/logger"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/session"
)

type fakeUseCase struct {
	outcome domain.Outcome
	got     []*createBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createBooking.Request) *createBooking.Response {
	f.got = append(f.got, req)
	return &createBooking.Response{Outcome: f.outcome}
}

type levelLogger struct {
	levels []string
}

func (l *levelLogger) Info(format string, v ...interface{})  { l.levels = append(l.levels, "info") }
func (l *levelLogger) Warn(format string, v ...interface{})  { l.levels = append(l.levels, "warn") }
func (l *levelLogger) Error(format string, v ...interface{}) { l.levels = append(l.levels, "error") }

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	return serveWithLogger(uc, body, logger.Nop())
}

func serveWithLogger(uc *fakeUseCase, body string, log Logger) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req = req.WithContext(session.WithIdentity(req.Context(), session.Identity{UserID: "u-42"}))
	rec := httptest.NewRecorder()
	NewHandler(uc, log).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{outcome: domain.Success("B-1")}

	rec := serve(uc, `{"roomName":"Conference Room A","date":"2099-01-01","startTime":"09:00","durationMinutes":60}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var body handlers.OutcomeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, handlers.OutcomeResponse{Status: "success", BookingID: "B-1"}, body)

	require.Len(t, uc.got, 1)
	assert.Equal(t, &createBooking.Request{
		UserID:          "u-42",
		Room:            domain.RoomRef{Name: "Conference Room A"},
		Date:            "2099-01-01",
		StartTime:       "09:00",
		DurationMinutes: 60,
	}, uc.got[0])
}

func TestHandle_Outcomes(t *testing.T) {
	tests := []struct {
		name    string
		outcome domain.Outcome
		status  int
	}{
		{name: "validation", outcome: domain.ValidationFailure("duration must be positive"), status: http.StatusBadRequest},
		{name: "not found", outcome: domain.RoomNotFound(), status: http.StatusNotFound},
		{name: "rejected", outcome: domain.RemoteRejected("slot no longer available"), status: http.StatusConflict},
		{name: "unavailable", outcome: domain.RemoteUnavailable(errors.New("timeout")), status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{outcome: tt.outcome}, `{"roomId":"R1","date":"2099-01-01","startTime":"09:00","durationMinutes":60}`)

			assert.Equal(t, tt.status, rec.Code)
			var body handlers.OutcomeResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, string(tt.outcome.Kind), body.Status)
			assert.Equal(t, tt.outcome.Text(), body.Message)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, `{"durationMinutes":"sixty"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, uc.got)
}

func TestHandle_LogLevelByOutcome(t *testing.T) {
	tests := []struct {
		outcome domain.Outcome
		level   string
	}{
		{outcome: domain.Success("B-1"), level: "info"},
		{outcome: domain.ValidationFailure(domain.ReasonStartInPast), level: "warn"},
		{outcome: domain.RoomAmbiguous(), level: "warn"},
		{outcome: domain.RemoteRejected("overlap"), level: "error"},
		{outcome: domain.RemoteUnavailable(errors.New("timeout")), level: "error"},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome.Kind), func(t *testing.T) {
			log := &levelLogger{}
			serveWithLogger(&fakeUseCase{outcome: tt.outcome}, `{"roomName":"A","date":"2099-01-01","startTime":"09:00","durationMinutes":60}`, log)
			assert.Equal(t, []string{tt.level}, log.levels)
		})
	}
}
