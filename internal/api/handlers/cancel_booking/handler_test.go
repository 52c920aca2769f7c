package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	cancelBooking "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/cancel_booking"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/logger"
)

type fakeUseCase struct {
	outcome domain.Outcome
	got     []string
}

func (f *fakeUseCase) Execute(ctx context.Context, req *cancelBooking.Request) *cancelBooking.Response {
	f.got = append(f.got, req.BookingID)
	return &cancelBooking.Response{Outcome: f.outcome}
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name    string
		outcome domain.Outcome
		status  int
	}{
		{name: "cancelled", outcome: domain.Success("B-1"), status: http.StatusOK},
		{name: "already cancelled", outcome: domain.RemoteRejected("booking already cancelled"), status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{outcome: tt.outcome}
			r := mux.NewRouter()
			r.HandleFunc("/bookings/{bookingId}/cancel", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodPost)
			rec := httptest.NewRecorder()

			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings/B-1/cancel", nil))

			assert.Equal(t, tt.status, rec.Code)
			require.Len(t, uc.got, 1)
			assert.Equal(t, "B-1", uc.got[0])
		})
	}
}
