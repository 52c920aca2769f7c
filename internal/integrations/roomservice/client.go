package roomservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/session"
)

const metricsTarget = "room_service"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder учет исходящих вызовов
type MetricsRecorder interface {
	ObserveIntegration(target, operation, result string, elapsed time.Duration)
}

// Client клиент для работы с RoomService
// Реализует rooms.RoomDirectory
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
}

// NewClient создает новый экземпляр клиента RoomService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithMetrics включает учет исходящих вызовов
func (c *Client) WithMetrics(m MetricsRecorder) *Client {
	c.metrics = m
	return c
}

// ListRooms получает полный список комнат
func (c *Client) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var list roomList
	if err := c.get(ctx, "list_rooms", c.baseURL+"/rooms", &list, nil); err != nil {
		return nil, err
	}
	rooms := list.toDomain()
	c.log.Info("RoomService: listed %d rooms", len(rooms))
	return rooms, nil
}

// SearchRooms получает комнаты, свободные в окне и подходящие под фильтры
func (c *Client) SearchRooms(ctx context.Context, window domain.TimeWindow, filters domain.RoomFilters) ([]domain.Room, error) {
	query := url.Values{}
	query.Set("start", window.StartISO())
	query.Set("end", window.EndISO())
	if filters.MinCapacity != nil {
		query.Set("capacity", strconv.Itoa(*filters.MinCapacity))
	}
	if len(filters.Features) > 0 {
		query.Set("features", strings.Join(filters.Features, ","))
	}

	var list roomList
	if err := c.get(ctx, "search_rooms", c.baseURL+"/rooms/search?"+query.Encode(), &list, nil); err != nil {
		return nil, err
	}
	rooms := list.toDomain()
	c.log.Info("RoomService: search window=%s returned %d rooms", window, len(rooms))
	return rooms, nil
}

// GetRoomSchedule получает активные бронирования комнаты, пересекающие окно day
// Записи с неразборчивым окном пропускаются
func (c *Client) GetRoomSchedule(ctx context.Context, roomID string, day domain.TimeWindow) ([]domain.BookedPeriod, error) {
	if strings.TrimSpace(roomID) == "" {
		return nil, fmt.Errorf("%w: room id is required", ErrInternal)
	}

	query := url.Values{}
	query.Set("start", day.StartISO())
	query.Set("end", day.EndISO())
	target := fmt.Sprintf("%s/rooms/%s/schedule?%s", c.baseURL, url.PathEscape(roomID), query.Encode())

	var list bookingList
	if err := c.get(ctx, "room_schedule", target, &list, ErrRoomNotFound); err != nil {
		return nil, err
	}

	periods := make([]domain.BookedPeriod, 0, len(list))
	for _, b := range list {
		period, err := b.ToDomain(roomID)
		if err != nil {
			c.log.Warn("RoomService: skip booking id=%s in schedule of room=%s: %v", b.Identifier(), roomID, err)
			continue
		}
		periods = append(periods, period)
	}

	c.log.Info("RoomService: schedule room=%s day=%s has %d bookings", roomID, day, len(periods))
	return periods, nil
}

// get выполняет GET и декодирует JSON в out
// notFound, если задан, возвращается на 404 вместо ErrInvalidResponse
func (c *Client) get(ctx context.Context, operation, target string, out interface{}, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	session.SetOutgoingHeaders(req)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(operation, "unavailable", started)
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && notFound != nil {
		c.observe(operation, "not_found", started)
		return notFound
	}

	if resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode == http.StatusTooManyRequests {
		c.observe(operation, "unavailable", started)
		c.log.Warn("RoomService: %s temporarily unavailable, status %d", operation, resp.StatusCode)
		return fmt.Errorf("%w: status code %d", ErrUnavailable, resp.StatusCode)
	}

	if resp.StatusCode != http.StatusOK {
		c.observe(operation, "error", started)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("RoomService: %s unexpected status %d", operation, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.observe(operation, "error", started)
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	c.observe(operation, "ok", started)
	return nil
}

func (c *Client) observe(operation, result string, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveIntegration(metricsTarget, operation, result, time.Since(started))
}
