package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/psqlbuilder"
)

var bookingColumns = []string{"id", "user_id", "room_id", "start_time", "end_time", "status"}

// GetRoomSchedule получает активные бронирования комнаты, пересекающие окно day
// Отсортированы по времени начала
func (r *Repository) GetRoomSchedule(ctx context.Context, roomID string, day domain.TimeWindow) ([]domain.BookedPeriod, error) {
	name, err := r.roomName(ctx, roomID)
	if err != nil {
		return nil, err
	}

	query, args, err := scheduleQuery(roomID, day)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomSchedule - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRoomSchedule - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]domain.BookedPeriod, 0)
	for rows.Next() {
		var (
			period     domain.BookedPeriod
			status     string
			start, end time.Time
		)
		if err := rows.Scan(&period.BookingID, &period.UserID, &period.RoomID, &start, &end, &status); err != nil {
			return nil, fmt.Errorf("%w: GetRoomSchedule - scan booking: %v", ErrScanRow, err)
		}

		window, err := domain.NewTimeWindow(start, end)
		if err != nil {
			return nil, fmt.Errorf("%w: GetRoomSchedule - booking id=%s: %v", ErrScanRow, period.BookingID, err)
		}
		period.Window = window
		period.Status = domain.BookingStatus(status)
		period.RoomName = name
		periods = append(periods, period)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRoomSchedule - iterate rows: %v", ErrScanRow, err)
	}

	return periods, nil
}

func (r *Repository) roomName(ctx context.Context, roomID string) (string, error) {
	query, args, err := roomNameQuery(roomID)
	if err != nil {
		return "", fmt.Errorf("%w: roomName - build select query: %v", ErrBuildQuery, err)
	}

	var name string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrRoomNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: roomName - scan room: %v", ErrScanRow, err)
	}
	return name, nil
}

func roomNameQuery(roomID string) (string, []interface{}, error) {
	return psqlbuilder.Select("name").
		From("rooms").
		Where(squirrel.Eq{"id": roomID}).
		ToSql()
}

func scheduleQuery(roomID string, day domain.TimeWindow) (string, []interface{}, error) {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": activeStatuses}).
		Where(squirrel.Lt{"start_time": day.End()}).
		Where(squirrel.Gt{"end_time": day.Start()}).
		OrderBy("start_time ASC", "id ASC").
		ToSql()
}
