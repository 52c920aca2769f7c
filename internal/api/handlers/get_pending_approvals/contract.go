package get_pending_approvals

import (
	"context"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/service/bookings/models"
)

type ApprovalService interface {
	GetPendingApprovals(ctx context.Context) (*models.PendingApprovalListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
