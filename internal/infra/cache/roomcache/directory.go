package roomcache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
)

const keyPrefix = "gateway:rooms:"

type cachedRoom struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Capacity *int     `json:"capacity,omitempty"`
	Features []string `json:"features,omitempty"`
}

// CachedDirectory кэширует полный список комнат на ttl
// Поиск свободных комнат не кэшируется: занятость меняется между запросами
type CachedDirectory struct {
	next   Directory
	store  Store
	key    string
	ttl    time.Duration
	logger Logger
}

// NewCachedDirectory создает кэширующую обертку; name отличает источники в общем Redis
func NewCachedDirectory(next Directory, store Store, name string, ttl time.Duration, logger Logger) *CachedDirectory {
	return &CachedDirectory{
		next:   next,
		store:  store,
		key:    keyPrefix + name,
		ttl:    ttl,
		logger: logger,
	}
}

// ListRooms отдает список из кэша, при промахе или ошибке кэша идет в источник
// Ошибка кэша никогда не превращается в ошибку вызова
func (d *CachedDirectory) ListRooms(ctx context.Context) ([]domain.Room, error) {
	raw, err := d.store.Get(ctx, d.key)
	switch {
	case err == nil:
		rooms, decodeErr := decode(raw)
		if decodeErr == nil {
			return rooms, nil
		}
		d.logger.Warn("RoomCache: corrupt entry key=%s: %v", d.key, decodeErr)
	case errors.Is(err, ErrCacheMiss):
	default:
		d.logger.Warn("RoomCache: read failed key=%s: %v", d.key, err)
	}

	rooms, err := d.next.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := encode(rooms); err == nil {
		if err := d.store.Set(ctx, d.key, payload, d.ttl); err != nil {
			d.logger.Warn("RoomCache: write failed key=%s: %v", d.key, err)
		}
	}

	return rooms, nil
}

// SearchRooms всегда идет в источник
func (d *CachedDirectory) SearchRooms(ctx context.Context, window domain.TimeWindow, filters domain.RoomFilters) ([]domain.Room, error) {
	return d.next.SearchRooms(ctx, window, filters)
}

func encode(rooms []domain.Room) ([]byte, error) {
	out := make([]cachedRoom, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, cachedRoom{ID: r.ID, Name: r.Name, Capacity: r.Capacity, Features: r.Features})
	}
	return json.Marshal(out)
}

func decode(raw []byte) ([]domain.Room, error) {
	var in []cachedRoom
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, err
	}
	rooms := make([]domain.Room, 0, len(in))
	for _, r := range in {
		rooms = append(rooms, domain.Room{ID: r.ID, Name: r.Name, Capacity: r.Capacity, Features: r.Features})
	}
	return rooms, nil
}
