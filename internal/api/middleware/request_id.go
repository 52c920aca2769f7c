package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/JJnvn/Software-Arch-CPRoom/pkg/session"
)

const maxRequestIDLen = 128

// RequestID берет X-Request-ID из запроса или генерирует новый и кладет его в Identity
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(session.HeaderRequestID))
		if requestID == "" || len(requestID) > maxRequestIDLen {
			requestID = uuid.NewString()
		}

		id, _ := session.FromContext(r.Context())
		id.RequestID = requestID

		w.Header().Set(session.HeaderRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(session.WithIdentity(r.Context(), id)))
	})
}
