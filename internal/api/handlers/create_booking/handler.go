package create_booking

import (
	"net/http"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/session"
)

const msgInvalidRequestBody = "invalid request body"

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	identity, _ := session.FromContext(r.Context())

	result := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(identity.UserID))

	if result.Outcome.IsSuccess() {
		h.logger.Info("POST /bookings - Booking created: booking_id=%s, user_id=%s",
			result.Outcome.BookingID, identity.UserID)
	} else if result.Outcome.IsLocal() {
		h.logger.Warn("POST /bookings - Not created: user_id=%s, outcome=%s, message=%q",
			identity.UserID, result.Outcome.Kind, result.Outcome.Text())
	} else {
		h.logger.Error("POST /bookings - Booking service failed: user_id=%s, outcome=%s, message=%q",
			identity.UserID, result.Outcome.Kind, result.Outcome.Text())
	}

	handlers.RespondOutcome(w, result.Outcome, http.StatusCreated)
}
