package search_rooms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	searchRooms "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/search_rooms"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/logger"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/ptr"
)

type fakeUseCase struct {
	resp *searchRooms.Response
	err  error
	got  []*searchRooms.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *searchRooms.Request) (*searchRooms.Response, error) {
	f.got = append(f.got, req)
	return f.resp, f.err
}

func get(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	window, err := domain.BuildWindow("2099-01-01", "09:00", 60, domain.WindowPolicy{})
	require.NoError(t, err)
	uc := &fakeUseCase{resp: &searchRooms.Response{
		Window: window,
		Rooms:  []domain.Room{{ID: "R1", Name: "Phoenix", Capacity: ptr.Ptr(8)}},
	}}

	rec := get(uc, "/api/v1/rooms/search?date=2099-01-01&startTime=09:00&durationMinutes=60&capacity=4&features=projector,whiteboard&features=tv")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body SearchRoomsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2099-01-01T09:00:00Z", body.Start)
	assert.Equal(t, "2099-01-01T10:00:00Z", body.End)
	assert.Equal(t, []RoomResponse{{ID: "R1", Name: "Phoenix", Capacity: ptr.Ptr(8)}}, body.Rooms)

	require.Len(t, uc.got, 1)
	assert.Equal(t, &searchRooms.Request{
		Date:            "2099-01-01",
		StartTime:       "09:00",
		DurationMinutes: 60,
		MinCapacity:     ptr.Ptr(4),
		Features:        []string{"projector", "whiteboard", "tv"},
	}, uc.got[0])
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{name: "bad duration", target: "/?date=2099-01-01&startTime=09:00&durationMinutes=x", status: http.StatusBadRequest},
		{name: "bad capacity", target: "/?date=2099-01-01&startTime=09:00&durationMinutes=60&capacity=lots", status: http.StatusBadRequest},
		{
			name:   "validation",
			target: "/?date=2000-01-01&startTime=09:00&durationMinutes=60",
			err:    domain.NewValidationError(domain.ReasonStartInPast),
			status: http.StatusBadRequest,
		},
		{
			name:   "directory down",
			target: "/?date=2099-01-01&startTime=09:00&durationMinutes=60",
			err:    fmt.Errorf("%w: timeout", searchRooms.ErrDirectoryUnavailable),
			status: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(&fakeUseCase{err: tt.err}, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
