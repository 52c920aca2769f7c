package bookings

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	bookingClient "github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/bookingservice"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/service/bookings/models"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/ptr"
)

// Service сервис для работы с бронированиями пользователя
type Service struct {
	client    BookingServiceClient
	approvals ApprovalServiceClient
	directory RoomDirectory
	logger    Logger
}

// NewService создает новый экземпляр сервиса бронирований
// approvals может быть nil, если сервис согласований не настроен
func NewService(client BookingServiceClient, approvals ApprovalServiceClient, directory RoomDirectory, logger Logger) *Service {
	return &Service{
		client:    client,
		approvals: approvals,
		directory: directory,
		logger:    logger,
	}
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу; новые бронирования идут первыми
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s, status=%q", req.UserID, ptr.Value(req.Status))

	if strings.TrimSpace(req.UserID) == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, domain.NewValidationError(domain.ReasonUserRequired))
	}

	// Конвертируем статус из строки в domain.BookingStatus
	var status *domain.BookingStatus
	if req.Status != nil {
		parsed, err := domain.ParseBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%s", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		status = &parsed
	}

	periods, err := s.client.ListUserBookings(ctx)
	if err != nil {
		s.logger.Warn("GetUserBookings: booking service error for user=%s: %v", req.UserID, err)
		return nil, remoteError("GetUserBookings", err)
	}

	filtered := make([]domain.BookedPeriod, 0, len(periods))
	for _, p := range periods {
		if status != nil && p.Status != *status {
			continue
		}
		filtered = append(filtered, p)
	}

	s.fillRoomNames(ctx, "GetUserBookings", filtered)

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Window.Start().After(filtered[j].Window.Start())
	})

	result := &models.BookingListResponse{Bookings: make([]models.BookingResponse, 0, len(filtered))}
	for _, p := range filtered {
		result.Bookings = append(result.Bookings, models.FromDomainBooking(p))
	}

	s.logger.Info("GetUserBookings: found %d bookings for user=%s", len(result.Bookings), req.UserID)
	return result, nil
}

// GetPendingApprovals получает бронирования, ожидающие решения сотрудника
// Самые ранние по времени начала идут первыми
func (s *Service) GetPendingApprovals(ctx context.Context) (*models.PendingApprovalListResponse, error) {
	if s.approvals == nil {
		return nil, fmt.Errorf("%w: GetPendingApprovals - approval service is not configured", ErrUnavailable)
	}

	requests, err := s.approvals.ListPendingApprovals(ctx)
	if err != nil {
		s.logger.Warn("GetPendingApprovals: approval service error: %v", err)
		return nil, remoteError("GetPendingApprovals", err)
	}

	periods := make([]domain.BookedPeriod, len(requests))
	for i, req := range requests {
		periods[i] = req.Period
	}
	s.fillRoomNames(ctx, "GetPendingApprovals", periods)
	for i := range requests {
		requests[i].Period = periods[i]
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].Period.Window.Start().Before(requests[j].Period.Window.Start())
	})

	result := &models.PendingApprovalListResponse{Pending: make([]models.PendingApprovalResponse, 0, len(requests))}
	for _, req := range requests {
		result.Pending = append(result.Pending, models.FromDomainApproval(req))
	}

	s.logger.Info("GetPendingApprovals: found %d pending bookings", len(result.Pending))
	return result, nil
}

// remoteError сводит ошибку клиента к ErrRejected или ErrUnavailable
func remoteError(op string, err error) error {
	var rejected *bookingClient.RejectedError
	if errors.As(err, &rejected) {
		return fmt.Errorf("%w: %w", ErrRejected, rejected)
	}
	return fmt.Errorf("%w: %s - remote service error: %v", ErrUnavailable, op, err)
}

// fillRoomNames подставляет названия комнат, которых нет в ответе сервиса
// Ошибка справочника не прерывает запрос, название остается пустым
func (s *Service) fillRoomNames(ctx context.Context, op string, periods []domain.BookedPeriod) {
	missing := false
	for _, p := range periods {
		if p.RoomName == "" {
			missing = true
			break
		}
	}
	if !missing || s.directory == nil {
		return
	}

	rooms, err := s.directory.ListRooms(ctx)
	if err != nil {
		s.logger.Warn("%s: room names unavailable: %v", op, err)
		return
	}

	names := make(map[string]string, len(rooms))
	for _, r := range rooms {
		names[r.ID] = r.Name
	}
	for i := range periods {
		if periods[i].RoomName == "" {
			periods[i].RoomName = names[periods[i].RoomID]
		}
	}
}
