package bookings

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	bookingClient "github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/bookingservice"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/service/bookings/models"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/logger"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/ptr"
)

type fakeClient struct {
	periods []domain.BookedPeriod
	err     error
	calls   int
}

func (f *fakeClient) ListUserBookings(ctx context.Context) ([]domain.BookedPeriod, error) {
	f.calls++
	return f.periods, f.err
}

type fakeDirectory struct {
	rooms []domain.Room
	err   error
	calls int
}

func (f *fakeDirectory) ListRooms(ctx context.Context) ([]domain.Room, error) {
	f.calls++
	return f.rooms, f.err
}

func booked(t *testing.T, id, roomID, roomName string, day int, status domain.BookingStatus) domain.BookedPeriod {
	t.Helper()
	start := time.Date(2030, 6, day, 9, 0, 0, 0, time.UTC)
	w, err := domain.NewTimeWindow(start, start.Add(time.Hour))
	require.NoError(t, err)
	return domain.BookedPeriod{BookingID: id, RoomID: roomID, RoomName: roomName, Status: status, Window: w}
}

func TestGetUserBookings_SortsAndFillsNames(t *testing.T) {
	client := &fakeClient{periods: []domain.BookedPeriod{
		booked(t, "B1", "R1", "", 1, domain.BookingStatusApproved),
		booked(t, "B2", "R2", "Focus Booth", 3, domain.BookingStatusPending),
		booked(t, "B3", "R9", "", 2, domain.BookingStatusCancelled),
	}}
	directory := &fakeDirectory{rooms: []domain.Room{{ID: "R1", Name: "Phoenix"}}}
	svc := NewService(client, nil, directory, logger.Nop())

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "u-1"})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 3)
	assert.Equal(t, "B2", resp.Bookings[0].BookingID)
	assert.Equal(t, "B3", resp.Bookings[1].BookingID)
	assert.Equal(t, "", resp.Bookings[1].RoomName)
	assert.Equal(t, models.BookingResponse{
		BookingID: "B1",
		RoomID:    "R1",
		RoomName:  "Phoenix",
		StartTime: "2030-06-01T09:00:00Z",
		EndTime:   "2030-06-01T10:00:00Z",
		Status:    "approved",
	}, resp.Bookings[2])
	assert.Equal(t, 1, directory.calls)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	client := &fakeClient{periods: []domain.BookedPeriod{
		booked(t, "B1", "R1", "Phoenix", 1, domain.BookingStatusApproved),
		booked(t, "B2", "R2", "Focus Booth", 3, domain.BookingStatusPending),
	}}
	directory := &fakeDirectory{}
	svc := NewService(client, nil, directory, logger.Nop())

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "u-1",
		Status: ptr.Ptr("PENDING"),
	})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "B2", resp.Bookings[0].BookingID)
	assert.Zero(t, directory.calls, "all names present")
}

func TestGetUserBookings_DirectoryFailureKeepsList(t *testing.T) {
	client := &fakeClient{periods: []domain.BookedPeriod{booked(t, "B1", "R1", "", 1, domain.BookingStatusApproved)}}
	svc := NewService(client, nil, &fakeDirectory{err: errors.New("down")}, logger.Nop())

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "u-1"})

	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Empty(t, resp.Bookings[0].RoomName)
}

func TestGetUserBookings_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		req    *models.GetUserBookingsRequest
		reason string
	}{
		{name: "no user", req: &models.GetUserBookingsRequest{UserID: " "}, reason: domain.ReasonUserRequired},
		{name: "bad status", req: &models.GetUserBookingsRequest{UserID: "u-1", Status: ptr.Ptr("expired")}, reason: domain.ReasonStatusInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{}
			svc := NewService(client, nil, &fakeDirectory{}, logger.Nop())

			_, err := svc.GetUserBookings(context.Background(), tt.req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			reason, ok := domain.ValidationReason(err)
			require.True(t, ok)
			assert.Equal(t, tt.reason, reason)
			assert.Zero(t, client.calls)
		})
	}
}

func TestGetUserBookings_ClientErrors(t *testing.T) {
	t.Run("rejected", func(t *testing.T) {
		client := &fakeClient{err: &bookingClient.RejectedError{StatusCode: 401, Message: "invalid token"}}
		svc := NewService(client, nil, &fakeDirectory{}, logger.Nop())

		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "u-1"})

		assert.ErrorIs(t, err, ErrRejected)
		assert.Contains(t, err.Error(), "invalid token")
	})

	t.Run("unavailable", func(t *testing.T) {
		client := &fakeClient{err: fmt.Errorf("%w: timeout", bookingClient.ErrUnavailable)}
		svc := NewService(client, nil, &fakeDirectory{}, logger.Nop())

		_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "u-1"})

		assert.ErrorIs(t, err, ErrUnavailable)
	})
}

type fakeApprovals struct {
	requests []domain.ApprovalRequest
	err      error
}

func (f *fakeApprovals) ListPendingApprovals(ctx context.Context) ([]domain.ApprovalRequest, error) {
	return f.requests, f.err
}

func TestGetPendingApprovals_SortsAndFillsNames(t *testing.T) {
	approvals := &fakeApprovals{requests: []domain.ApprovalRequest{
		{Period: booked(t, "B1", "R1", "", 3, domain.BookingStatusPending), UserName: "Alice"},
		{Period: booked(t, "B2", "R2", "Focus Booth", 1, domain.BookingStatusPending), UserName: "Bob"},
	}}
	approvals.requests[0].Period.UserID = "u-1"
	directory := &fakeDirectory{rooms: []domain.Room{{ID: "R1", Name: "Phoenix"}}}
	svc := NewService(&fakeClient{}, approvals, directory, logger.Nop())

	resp, err := svc.GetPendingApprovals(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Pending, 2)
	assert.Equal(t, "B2", resp.Pending[0].BookingID)
	assert.Equal(t, models.PendingApprovalResponse{
		BookingID: "B1",
		RoomID:    "R1",
		RoomName:  "Phoenix",
		UserID:    "u-1",
		UserName:  "Alice",
		StartTime: "2030-06-03T09:00:00Z",
		EndTime:   "2030-06-03T10:00:00Z",
	}, resp.Pending[1])
	assert.Equal(t, 1, directory.calls)
}

func TestGetPendingApprovals_Errors(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		svc := NewService(&fakeClient{}, nil, &fakeDirectory{}, logger.Nop())

		_, err := svc.GetPendingApprovals(context.Background())

		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("rejected", func(t *testing.T) {
		approvals := &fakeApprovals{err: &bookingClient.RejectedError{StatusCode: 403, Message: "staff only"}}
		svc := NewService(&fakeClient{}, approvals, &fakeDirectory{}, logger.Nop())

		_, err := svc.GetPendingApprovals(context.Background())

		assert.ErrorIs(t, err, ErrRejected)
		assert.Contains(t, err.Error(), "staff only")
	})

	t.Run("unavailable", func(t *testing.T) {
		approvals := &fakeApprovals{err: fmt.Errorf("%w: timeout", bookingClient.ErrUnavailable)}
		svc := NewService(&fakeClient{}, approvals, &fakeDirectory{}, logger.Nop())

		_, err := svc.GetPendingApprovals(context.Background())

		assert.ErrorIs(t, err, ErrUnavailable)
	})

	t.Run("empty queue", func(t *testing.T) {
		svc := NewService(&fakeClient{}, &fakeApprovals{}, &fakeDirectory{}, logger.Nop())

		resp, err := svc.GetPendingApprovals(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, resp.Pending)
		assert.Empty(t, resp.Pending)
	})
}
