package middleware

import (
	"net/http"
	"strings"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/session"
)

const bearerPrefix = "bearer "

// Auth требует X-User-ID и сохраняет bearer token для исходящих вызовов
// Проверка токена остается за сервисом бронирований
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(session.HeaderUserID))
		if userID == "" {
			handlers.RespondUnauthorized(w, "X-User-ID header is required")
			return
		}

		id, _ := session.FromContext(r.Context())
		id.UserID = userID
		id.Token = bearerToken(r.Header.Get(session.HeaderAuthorization))

		next.ServeHTTP(w, r.WithContext(session.WithIdentity(r.Context(), id)))
	})
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(bearerPrefix):])
}
