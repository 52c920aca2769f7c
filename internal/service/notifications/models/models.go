package models

import (
	"time"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// GetHistoryRequest запрос истории уведомлений
type GetHistoryRequest struct {
	UserID   string
	Page     int
	PageSize int
}

// NotificationResponse уведомление в ответе API
type NotificationResponse struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`
	Message  string                 `json:"message"`
	Channel  string                 `json:"channel"`
	Status   string                 `json:"status"`
	SentAt   string                 `json:"sentAt,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// HistoryResponse страница истории уведомлений
type HistoryResponse struct {
	Page     int                    `json:"page"`
	PageSize int                    `json:"pageSize"`
	History  []NotificationResponse `json:"history"`
}

// FromDomainNotification конвертирует доменную модель в модель ответа
func FromDomainNotification(n domain.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:       n.ID,
		Type:     n.Type,
		Message:  n.Message,
		Channel:  n.Channel,
		Status:   n.Status,
		Metadata: n.Metadata,
	}
	if !n.SentAt.IsZero() {
		resp.SentAt = n.SentAt.Format(time.RFC3339)
	}
	return resp
}
