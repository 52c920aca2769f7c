package get_pending_approvals

import (
	"errors"
	"net/http"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers"
	bookingClient "github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/bookingservice"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/service/bookings"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/session"
)

const (
	msgMissingIdentity = "missing user identity"
	msgUnavailable     = "approval service unavailable, try again later"
	msgRejected        = "approval service rejected the request"
)

type Handler struct {
	service ApprovalService
	logger  Logger
}

func NewHandler(service ApprovalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/approvals/pending
// Права сотрудника проверяет сервис согласований по пересланному токену
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok || identity.UserID == "" {
		h.logger.Warn("GET /approvals/pending - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	result, err := h.service.GetPendingApprovals(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrRejected):
			message := msgRejected
			var rejected *bookingClient.RejectedError
			if errors.As(err, &rejected) && rejected.Message != "" {
				message = rejected.Message
			}
			h.logger.Warn("GET /approvals/pending - Rejected: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondError(w, http.StatusConflict, message)

		case errors.Is(err, bookings.ErrUnavailable):
			h.logger.Error("GET /approvals/pending - Approval service unavailable: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUnavailable)

		default:
			h.logger.Error("GET /approvals/pending - Failed to get queue: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /approvals/pending - Queue retrieved: user_id=%s, count=%d", identity.UserID, len(result.Pending))
	handlers.RespondJSON(w, http.StatusOK, result)
}
