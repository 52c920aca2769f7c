package room

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/psqlbuilder"
)

// activeStatuses статусы бронирований, которые занимают комнату
var activeStatuses = []string{"pending", "approved"}

var roomColumns = []string{"id", "name", "capacity", "features"}

// Repository read-only справочник комнат поверх таблиц rooms и bookings room service
// Реализует rooms.RoomDirectory
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListRooms получает все комнаты, отсортированные по имени
func (r *Repository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	query, args, err := listQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: ListRooms - build select query: %v", ErrBuildQuery, err)
	}
	return r.query(ctx, "ListRooms", query, args)
}

// SearchRooms получает комнаты, подходящие под фильтры и не занятые активным бронированием в окне
func (r *Repository) SearchRooms(ctx context.Context, window domain.TimeWindow, filters domain.RoomFilters) ([]domain.Room, error) {
	query, args, err := searchQuery(window, filters)
	if err != nil {
		return nil, fmt.Errorf("%w: SearchRooms - build select query: %v", ErrBuildQuery, err)
	}
	return r.query(ctx, "SearchRooms", query, args)
}

func (r *Repository) query(ctx context.Context, op, query string, args []interface{}) ([]domain.Room, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rooms := make([]domain.Room, 0)
	for rows.Next() {
		var (
			room     domain.Room
			capacity sql.NullInt64
			features featureList
		)
		if err := rows.Scan(&room.ID, &room.Name, &capacity, &features); err != nil {
			return nil, fmt.Errorf("%w: %s - scan room: %v", ErrScanRow, op, err)
		}
		if capacity.Valid {
			c := int(capacity.Int64)
			room.Capacity = &c
		}
		room.Features = []string(features)
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrScanRow, op, err)
	}

	return rooms, nil
}

func listQuery() (string, []interface{}, error) {
	return psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("name ASC", "id ASC").
		ToSql()
}

func searchQuery(window domain.TimeWindow, filters domain.RoomFilters) (string, []interface{}, error) {
	q := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Expr(
			"NOT EXISTS (SELECT 1 FROM bookings b WHERE b.room_id = rooms.id AND b.status = ANY(?) AND b.start_time < ? AND b.end_time > ?)",
			pq.Array(activeStatuses), window.End(), window.Start(),
		))

	if filters.MinCapacity != nil {
		q = q.Where(squirrel.GtOrEq{"capacity": *filters.MinCapacity})
	}

	// features хранится как JSON-массив строк в исходном регистре, сравниваем без учета регистра
	if features := normalizeFeatures(filters.Features); len(features) > 0 {
		required, err := json.Marshal(features)
		if err != nil {
			return "", nil, err
		}
		q = q.Where(squirrel.Expr("lower(NULLIF(features::text, ''))::jsonb @> ?::jsonb", string(required)))
	}

	return q.OrderBy("name ASC", "id ASC").ToSql()
}

func normalizeFeatures(features []string) []string {
	out := make([]string, 0, len(features))
	for _, f := range features {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}
