package domain

import "strings"

// MaxDenyReasonLength bounds the free-text reason attached to a denial
const MaxDenyReasonLength = 500

// ApprovalRequest is a pending booking waiting for a staff decision
type ApprovalRequest struct {
	Period   BookedPeriod
	UserName string
}

// NormalizeDenyReason trims the reason and rejects one longer than MaxDenyReasonLength characters
func NormalizeDenyReason(reason string) (string, error) {
	reason = strings.TrimSpace(reason)
	if len([]rune(reason)) > MaxDenyReasonLength {
		return "", NewValidationError(ReasonDenyReasonTooLong)
	}
	return reason, nil
}
