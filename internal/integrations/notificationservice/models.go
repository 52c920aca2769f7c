package notificationservice

import (
	"strings"
	"time"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// historyResponse ответ GET /notifications/history
type historyResponse struct {
	UserID   string        `json:"user_id"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	History  []historyItem `json:"history"`
}

type historyItem struct {
	ID       string                 `json:"id"`
	UserID   string                 `json:"user_id"`
	Type     string                 `json:"type"`
	Message  string                 `json:"message"`
	Channel  string                 `json:"channel"`
	SentAt   *time.Time             `json:"sent_at"`
	Status   string                 `json:"status"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

func (i historyItem) toDomain() domain.Notification {
	n := domain.Notification{
		ID:       strings.TrimSpace(i.ID),
		Type:     i.Type,
		Message:  i.Message,
		Channel:  i.Channel,
		Status:   i.Status,
		Metadata: i.Metadata,
	}
	if i.SentAt != nil {
		n.SentAt = i.SentAt.UTC()
	}
	return n
}
