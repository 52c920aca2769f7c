package transfer_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	transferBooking "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/transfer_booking"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/logger"
)

type fakeUseCase struct {
	outcome domain.Outcome
	got     []*transferBooking.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *transferBooking.Request) *transferBooking.Response {
	f.got = append(f.got, req)
	return &transferBooking.Response{Outcome: f.outcome}
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{outcome: domain.Success("B-1")}
	r := mux.NewRouter()
	r.HandleFunc("/bookings/{bookingId}/transfer", NewHandler(uc, logger.Nop()).Handle).Methods(http.MethodPost)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/bookings/B-1/transfer",
		strings.NewReader(`{"newOwnerEmail":"bob@example.com"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, uc.got, 1)
	assert.Equal(t, &transferBooking.Request{BookingID: "B-1", NewOwnerEmail: "bob@example.com"}, uc.got[0])
}
