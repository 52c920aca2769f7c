package search_rooms

import (
	"strings"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

// buildFilters проверяет вместимость и чистит список оснащения
func buildFilters(req *Request) (domain.RoomFilters, error) {
	if req.MinCapacity != nil && *req.MinCapacity < 0 {
		return domain.RoomFilters{}, domain.NewValidationError(domain.ReasonCapacityNegative)
	}

	var features []string
	seen := make(map[string]struct{}, len(req.Features))
	for _, f := range req.Features {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		key := strings.ToLower(f)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		features = append(features, f)
	}

	return domain.RoomFilters{MinCapacity: req.MinCapacity, Features: features}, nil
}
