package reschedule_booking

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/bookingservice"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/logger"
)

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

type rescheduleCall struct {
	bookingID string
	req       *bookingservice.RescheduleRequest
}

type fakeClient struct {
	err   error
	calls []rescheduleCall
}

func (c *fakeClient) RescheduleBooking(ctx context.Context, bookingID string, req *bookingservice.RescheduleRequest) error {
	c.calls = append(c.calls, rescheduleCall{bookingID: bookingID, req: req})
	return c.err
}

func newUseCase(client *fakeClient, requireFuture bool) *UseCase {
	uc := NewUseCase(client, domain.WindowPolicy{RequireFuture: requireFuture}, nil, logger.Nop())
	uc.timeProvider = fixedTime{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_Success(t *testing.T) {
	client := &fakeClient{}
	uc := newUseCase(client, false)

	resp := uc.Execute(context.Background(), &Request{
		BookingID: "B-1",
		Date:      "2025-06-03",
		StartTime: "13:00",
		EndTime:   "14:30",
	})

	assert.Equal(t, domain.Success("B-1"), resp.Outcome)
	require.Len(t, client.calls, 1)
	assert.Equal(t, "B-1", client.calls[0].bookingID)
	assert.Equal(t, &bookingservice.RescheduleRequest{
		StartTime: "2025-06-03T13:00:00Z",
		EndTime:   "2025-06-03T14:30:00Z",
	}, client.calls[0].req)
	assert.Equal(t, []domain.SubmissionState{
		domain.StateDraft, domain.StateValidating, domain.StateReady, domain.StateSubmitting, domain.StateSucceeded,
	}, resp.States)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name          string
		req           *Request
		requireFuture bool
		reason        string
	}{
		{
			name:   "end before start",
			req:    &Request{BookingID: "B-1", Date: "2025-06-03", StartTime: "14:00", EndTime: "13:00"},
			reason: "end time must be after start time",
		},
		{
			name:   "end equals start",
			req:    &Request{BookingID: "B-1", Date: "2025-06-03", StartTime: "14:00", EndTime: "14:00"},
			reason: "end time must be after start time",
		},
		{
			name:   "bad time",
			req:    &Request{BookingID: "B-1", Date: "2025-06-03", StartTime: "25:00", EndTime: "26:00"},
			reason: "invalid date or time",
		},
		{
			name:   "missing booking",
			req:    &Request{Date: "2025-06-03", StartTime: "13:00", EndTime: "14:00"},
			reason: "booking id is required",
		},
		{
			name:          "past when future required",
			req:           &Request{BookingID: "B-1", Date: "2025-05-03", StartTime: "13:00", EndTime: "14:00"},
			requireFuture: true,
			reason:        "start must be in the future",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			uc := newUseCase(client, tt.requireFuture)

			resp := uc.Execute(context.Background(), tt.req)

			assert.Equal(t, domain.ValidationFailure(tt.reason), resp.Outcome)
			assert.Empty(t, client.calls)
			assert.Equal(t, domain.StateDraft, resp.States[len(resp.States)-1])
		})
	}
}

func TestExecute_MinimumDuration(t *testing.T) {
	client := &fakeClient{}
	uc := NewUseCase(client, domain.WindowPolicy{MinDurationMinutes: domain.DefaultMinDurationMinutes}, nil, logger.Nop())
	uc.timeProvider = fixedTime{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	resp := uc.Execute(context.Background(), &Request{BookingID: "B-1", Date: "2025-06-03", StartTime: "09:00", EndTime: "09:01"})

	assert.Equal(t, domain.ValidationFailure("duration must be at least 15 minutes"), resp.Outcome)
	assert.Empty(t, client.calls)

	resp = uc.Execute(context.Background(), &Request{BookingID: "B-1", Date: "2025-06-03", StartTime: "09:00", EndTime: "09:15"})

	assert.True(t, resp.Outcome.IsSuccess())
	assert.Len(t, client.calls, 1)
}

func TestExecute_PastAllowedByDefault(t *testing.T) {
	client := &fakeClient{}
	uc := newUseCase(client, false)

	resp := uc.Execute(context.Background(), &Request{BookingID: "B-1", Date: "2025-05-03", StartTime: "13:00", EndTime: "14:00"})

	assert.True(t, resp.Outcome.IsSuccess())
}

func TestExecute_Remote(t *testing.T) {
	t.Run("rejected", func(t *testing.T) {
		client := &fakeClient{err: &bookingservice.RejectedError{StatusCode: http.StatusConflict, Message: "conflict"}}
		resp := newUseCase(client, false).Execute(context.Background(),
			&Request{BookingID: "B-1", Date: "2025-06-03", StartTime: "13:00", EndTime: "14:00"})

		assert.Equal(t, domain.RemoteRejected("conflict"), resp.Outcome)
		assert.Equal(t, domain.StateRejected, resp.States[len(resp.States)-1])
	})

	t.Run("unavailable", func(t *testing.T) {
		client := &fakeClient{err: bookingservice.ErrUnavailable}
		resp := newUseCase(client, false).Execute(context.Background(),
			&Request{BookingID: "B-1", Date: "2025-06-03", StartTime: "13:00", EndTime: "14:00"})

		assert.Equal(t, domain.OutcomeRemoteUnavailable, resp.Outcome.Kind)
		assert.Len(t, client.calls, 1)
	})
}
