package bookingservice

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

const msgDecisionNotApplied = "decision was not applied"

// ListPendingApprovals получает бронирования, ожидающие решения сотрудника (GET /approvals/pending)
// Записи без идентификатора или с неразборчивым окном пропускаются
func (c *Client) ListPendingApprovals(ctx context.Context) ([]domain.ApprovalRequest, error) {
	var list pendingList
	if err := c.do(ctx, "list_pending_approvals", http.MethodGet, "/approvals/pending", nil, &list); err != nil {
		return nil, err
	}

	requests := make([]domain.ApprovalRequest, 0, len(list.Pending))
	for _, item := range list.Pending {
		request, err := item.ToDomain()
		if err != nil {
			c.log.Warn("%s: skip pending booking id=%s: %v", c.target, item.BookingID, err)
			continue
		}
		requests = append(requests, request)
	}

	c.log.Info("%s: listed %d pending approvals", c.target, len(requests))
	return requests, nil
}

// ApproveBooking подтверждает бронирование
func (c *Client) ApproveBooking(ctx context.Context, bookingID string) error {
	if strings.TrimSpace(bookingID) == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidRequest)
	}
	return c.decide(ctx, "approve_booking", approvalPath(bookingID, "approve"), &DecisionRequest{})
}

// DenyBooking отклоняет бронирование с необязательной причиной
func (c *Client) DenyBooking(ctx context.Context, bookingID, reason string) error {
	if strings.TrimSpace(bookingID) == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidRequest)
	}
	return c.decide(ctx, "deny_booking", approvalPath(bookingID, "deny"), &DecisionRequest{Reason: reason})
}

// decide отправляет решение; ответ {"success": false} с кодом 2xx считается отказом
func (c *Client) decide(ctx context.Context, operation, path string, req *DecisionRequest) error {
	var resp DecisionResponse
	if err := c.do(ctx, operation, http.MethodPost, path, req, &resp); err != nil {
		return err
	}
	if resp.Success != nil && !*resp.Success {
		c.log.Warn("%s: %s not applied", c.target, path)
		return &RejectedError{StatusCode: http.StatusOK, Message: msgDecisionNotApplied}
	}
	return nil
}

func approvalPath(bookingID, action string) string {
	return fmt.Sprintf("/approvals/%s/%s", url.PathEscape(bookingID), action)
}
