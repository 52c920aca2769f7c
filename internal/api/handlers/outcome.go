package handlers

import (
	"net/http"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// OutcomeResponse тело ответа на любую отправку формы
type OutcomeResponse struct {
	Status    string `json:"status"`
	BookingID string `json:"bookingId,omitempty"`
	Message   string `json:"message,omitempty"`
}

// OutcomeStatus HTTP статус для итога; successStatus используется для успеха
func OutcomeStatus(outcome domain.Outcome, successStatus int) int {
	switch outcome.Kind {
	case domain.OutcomeSuccess:
		return successStatus
	case domain.OutcomeValidationFailure:
		return http.StatusBadRequest
	case domain.OutcomeRoomNotFound:
		return http.StatusNotFound
	case domain.OutcomeRoomAmbiguous, domain.OutcomeRemoteRejected:
		return http.StatusConflict
	case domain.OutcomeRemoteUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// RespondOutcome пишет итог отправки
func RespondOutcome(w http.ResponseWriter, outcome domain.Outcome, successStatus int) {
	resp := OutcomeResponse{
		Status:    string(outcome.Kind),
		BookingID: outcome.BookingID,
	}
	if !outcome.IsSuccess() {
		resp.Message = outcome.Text()
	}
	RespondJSON(w, OutcomeStatus(outcome, successStatus), resp)
}
