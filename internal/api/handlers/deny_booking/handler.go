package deny_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase DenyBookingUseCase
	logger  Logger
}

func NewHandler(useCase DenyBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/approvals/{bookingId}/deny
// Body: {"reason": "..."} (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req DenyBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /approvals/{id}/deny - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))

	if !result.Outcome.IsSuccess() {
		h.logger.Warn("POST /approvals/{id}/deny - booking_id=%s, outcome=%s", bookingID, result.Outcome.Kind)
	}

	handlers.RespondOutcome(w, result.Outcome, http.StatusOK)
}
