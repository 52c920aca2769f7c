package get_user_bookings

import (
	"errors"
	"net/http"
	"strings"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	bookingClient "github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/bookingservice"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/service/bookings"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/service/bookings/models"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/ptr"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/session"
)

const (
	msgMissingIdentity = "missing user identity"
	msgUnavailable     = "booking service unavailable, try again later"
	msgRejected        = "booking service rejected the request"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/mine
// Query params: status (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok || identity.UserID == "" {
		h.logger.Warn("GET /bookings/mine - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	// Получаем status из query параметров (опционально)
	var statusPtr *string
	if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
		statusPtr = ptr.Ptr(status)
	}

	result, err := h.service.GetUserBookings(r.Context(), &models.GetUserBookingsRequest{
		UserID: identity.UserID,
		Status: statusPtr,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			reason, _ := domain.ValidationReason(err)
			h.logger.Warn("GET /bookings/mine - Invalid input: user_id=%s, reason=%s", identity.UserID, reason)
			handlers.RespondBadRequest(w, reason)

		case errors.Is(err, bookings.ErrRejected):
			message := msgRejected
			var rejected *bookingClient.RejectedError
			if errors.As(err, &rejected) && rejected.Message != "" {
				message = rejected.Message
			}
			h.logger.Warn("GET /bookings/mine - Rejected: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondError(w, http.StatusConflict, message)

		case errors.Is(err, bookings.ErrUnavailable):
			h.logger.Error("GET /bookings/mine - Booking service unavailable: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUnavailable)

		default:
			h.logger.Error("GET /bookings/mine - Failed to get bookings: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/mine - Bookings retrieved successfully: user_id=%s, count=%d",
		identity.UserID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
