package session

import (
	"context"
	"net/http"
)

// Identity данные вызывающего пользователя для одного запроса
// Заполняется на границе шлюза и передается дальше только через context
type Identity struct {
	UserID    string
	Token     string // bearer token без префикса "Bearer "
	RequestID string
}

type ctxKey struct{}

// WithIdentity кладет Identity в контекст
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext достает Identity из контекста
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}

// Заголовки, которые шлюз передает во внешние сервисы
const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
	HeaderUserID        = "X-User-ID"
)

// SetOutgoingHeaders копирует bearer token и request id из контекста в исходящий запрос
func SetOutgoingHeaders(req *http.Request) {
	id, ok := FromContext(req.Context())
	if !ok {
		return
	}
	if id.Token != "" {
		req.Header.Set(HeaderAuthorization, "Bearer "+id.Token)
	}
	if id.RequestID != "" {
		req.Header.Set(HeaderRequestID, id.RequestID)
	}
}
