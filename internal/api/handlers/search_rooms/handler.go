package search_rooms

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	searchRooms "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/search_rooms"
)

const (
	msgInvalidDuration      = "durationMinutes must be an integer"
	msgInvalidCapacity      = "capacity must be an integer"
	msgDirectoryUnavailable = "room directory unavailable, try again later"
)

type Handler struct {
	useCase SearchRoomsUseCase
	logger  Logger
}

func NewHandler(useCase SearchRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/search
// Query params: date, startTime, durationMinutes (required), capacity, features (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	duration, err := strconv.Atoi(strings.TrimSpace(query.Get("durationMinutes")))
	if err != nil {
		h.logger.Warn("GET /rooms/search - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	req := &searchRooms.Request{
		Date:            query.Get("date"),
		StartTime:       query.Get("startTime"),
		DurationMinutes: duration,
		Features:        parseFeatures(query),
	}

	if raw := strings.TrimSpace(query.Get("capacity")); raw != "" {
		capacity, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /rooms/search - Invalid capacity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCapacity)
			return
		}
		req.MinCapacity = &capacity
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if reason, ok := domain.ValidationReason(err); ok {
			h.logger.Warn("GET /rooms/search - Validation failed: %s", reason)
			handlers.RespondBadRequest(w, reason)
			return
		}
		if errors.Is(err, searchRooms.ErrDirectoryUnavailable) {
			h.logger.Error("GET /rooms/search - Directory unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgDirectoryUnavailable)
			return
		}
		h.logger.Error("GET /rooms/search - Failed to search rooms: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// parseFeatures принимает как features=a,b так и повторяющийся параметр
func parseFeatures(query url.Values) []string {
	var features []string
	for _, value := range query["features"] {
		features = append(features, strings.Split(value, ",")...)
	}
	return features
}
