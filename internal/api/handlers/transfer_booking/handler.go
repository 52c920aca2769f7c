package transfer_booking

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase TransferBookingUseCase
	logger  Logger
}

func NewHandler(useCase TransferBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/transfer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req TransferBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/transfer - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))

	if !result.Outcome.IsSuccess() {
		h.logger.Warn("POST /bookings/{id}/transfer - booking_id=%s, outcome=%s", bookingID, result.Outcome.Kind)
	}

	handlers.RespondOutcome(w, result.Outcome, http.StatusOK)
}
