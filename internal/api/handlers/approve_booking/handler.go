package approve_booking

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers"
	approveBooking "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/approve_booking"
)

type Handler struct {
	useCase ApproveBookingUseCase
	logger  Logger
}

func NewHandler(useCase ApproveBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/approvals/{bookingId}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	result := h.useCase.Execute(r.Context(), &approveBooking.Request{BookingID: bookingID})

	if !result.Outcome.IsSuccess() {
		h.logger.Warn("POST /approvals/{id}/approve - booking_id=%s, outcome=%s", bookingID, result.Outcome.Kind)
	}

	handlers.RespondOutcome(w, result.Outcome, http.StatusOK)
}
