package notificationservice

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

const metricsTarget = "notification_service"

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

// Client клиент для работы с NotificationService
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    MetricsRecorder
	log        Logger
}

// NewClient создает новый экземпляр клиента NotificationService
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

// ListHistory получает страницу истории уведомлений текущего пользователя
// Пользователь определяется сервисом по пересланному токену
func (c *Client) ListHistory(ctx context.Context, page, pageSize int) (domain.NotificationPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/notifications/history?"+query.Encode(), nil)
	if err != nil {
		return domain.NotificationPage{}, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")
	session.SetOutgoingHeaders(req)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("unavailable", started)
		return domain.NotificationPage{}, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch code := resp.StatusCode; {
	case code == http.StatusRequestTimeout || code == http.StatusTooManyRequests || code >= 500:
		c.observe("unavailable", started)
		c.log.Warn("NotificationService: history unavailable, status %d", code)
		return domain.NotificationPage{}, fmt.Errorf("%w: status code %d", ErrUnavailable, code)
	case code != http.StatusOK:
		c.observe("rejected", started)
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.Warn("NotificationService: history rejected, status %d", code)
		return domain.NotificationPage{}, fmt.Errorf("%w: status code %d: %s", ErrRejected, code, strings.TrimSpace(string(body)))
	}

	var decoded historyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.observe("error", started)
		return domain.NotificationPage{}, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	c.observe("ok", started)

	result := domain.NotificationPage{
		Page:     decoded.Page,
		PageSize: decoded.PageSize,
		Items:    make([]domain.Notification, 0, len(decoded.History)),
	}
	if result.Page == 0 {
		result.Page = page
	}
	if result.PageSize == 0 {
		result.PageSize = pageSize
	}
	for _, item := range decoded.History {
		result.Items = append(result.Items, item.toDomain())
	}

	c.log.Info("NotificationService: history page=%d has %d items", result.Page, len(result.Items))
	return result, nil
}

func (c *Client) observe(result string, started time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveIntegration(metricsTarget, "list_history", result, time.Since(started))
}
