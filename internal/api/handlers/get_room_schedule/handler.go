package get_room_schedule

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	getRoomSchedule "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/get_room_schedule"
)

const (
	msgMissingDate         = "date is required"
	msgRoomNotFound        = "room not found"
	msgScheduleUnavailable = "room schedule unavailable, try again later"
)

type Handler struct {
	useCase GetRoomScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetRoomScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/schedule
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		h.logger.Warn("GET /rooms/{roomId}/schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getRoomSchedule.Request{
		RoomID: roomID,
		Date:   date,
	})
	if err != nil {
		if reason, ok := domain.ValidationReason(err); ok {
			h.logger.Warn("GET /rooms/{roomId}/schedule - Validation failed: room_id=%s, reason=%s", roomID, reason)
			handlers.RespondBadRequest(w, reason)
			return
		}

		switch {
		case errors.Is(err, getRoomSchedule.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{roomId}/schedule - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, getRoomSchedule.ErrScheduleUnavailable):
			h.logger.Error("GET /rooms/{roomId}/schedule - Source unavailable: room_id=%s, error=%v", roomID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgScheduleUnavailable)

		default:
			h.logger.Error("GET /rooms/{roomId}/schedule - Failed to get schedule: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{roomId}/schedule - Schedule retrieved: room_id=%s, bookings=%d, slots=%d",
		roomID, len(result.Busy), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
