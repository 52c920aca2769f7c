package domain

import "time"

// History paging bounds of the notification service
const (
	DefaultHistoryPageSize = 20
	MaxHistoryPageSize     = 100
)

// Notification is one delivered (or attempted) message from the user's history
type Notification struct {
	ID       string
	Type     string
	Message  string
	Channel  string
	Status   string
	SentAt   time.Time
	Metadata map[string]interface{}
}

// NotificationPage is one page of history, newest first
type NotificationPage struct {
	Page     int
	PageSize int
	Items    []Notification
}

// NormalizeHistoryPage clamps paging to what the notification service serves.
// A page below 1 becomes 1; a size outside 1..MaxHistoryPageSize becomes DefaultHistoryPageSize.
func NormalizeHistoryPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > MaxHistoryPageSize {
		pageSize = DefaultHistoryPageSize
	}
	return page, pageSize
}
