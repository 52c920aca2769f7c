package get_notification_history

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/service/notifications"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/service/notifications/models"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/session"
)

const (
	msgMissingIdentity = "missing user identity"
	msgUnavailable     = "notification service unavailable, try again later"
	msgRejected        = "notification service rejected the request"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/notifications/history
// Query params: page, page_size (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := session.FromContext(r.Context())
	if !ok || identity.UserID == "" {
		h.logger.Warn("GET /notifications/history - Missing identity")
		handlers.RespondUnauthorized(w, msgMissingIdentity)
		return
	}

	query := r.URL.Query()
	page, ok := queryInt(query.Get("page"))
	if !ok {
		handlers.RespondBadRequest(w, domain.ReasonPageInvalid)
		return
	}
	pageSize, ok := queryInt(query.Get("page_size"))
	if !ok {
		handlers.RespondBadRequest(w, domain.ReasonPageSizeInvalid)
		return
	}

	result, err := h.service.GetHistory(r.Context(), &models.GetHistoryRequest{
		UserID:   identity.UserID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrInvalidInput):
			reason, _ := domain.ValidationReason(err)
			h.logger.Warn("GET /notifications/history - Invalid input: user_id=%s, reason=%s", identity.UserID, reason)
			handlers.RespondBadRequest(w, reason)

		case errors.Is(err, notifications.ErrRejected):
			h.logger.Warn("GET /notifications/history - Rejected: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondError(w, http.StatusConflict, msgRejected)

		case errors.Is(err, notifications.ErrUnavailable):
			h.logger.Error("GET /notifications/history - Notification service unavailable: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUnavailable)

		default:
			h.logger.Error("GET /notifications/history - Failed to get history: user_id=%s, error=%v", identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /notifications/history - History retrieved: user_id=%s, page=%d, count=%d",
		identity.UserID, result.Page, len(result.History))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// queryInt разбирает необязательный числовой параметр; пустое значение дает 0
func queryInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.Atoi(raw)
	return v, err == nil
}
