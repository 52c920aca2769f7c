package cancel_booking

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers"
	cancelBooking "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/cancel_booking"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result := h.useCase.Execute(r.Context(), &cancelBooking.Request{BookingID: bookingID})

	if !result.Outcome.IsSuccess() {
		h.logger.Warn("POST /bookings/{id}/cancel - booking_id=%s, outcome=%s", bookingID, result.Outcome.Kind)
	}

	handlers.RespondOutcome(w, result.Outcome, http.StatusOK)
}
