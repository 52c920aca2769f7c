package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/JJnvn/Software-Arch-CPRoom/pkg/types"
)

// Источники справочника комнат
const (
	DirectorySourceHTTP     = "http"
	DirectorySourcePostgres = "postgres"
)

// ErrInvalidConfig возвращается, когда конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	Server              ServerConfig    `toml:"server"`
	Logs                LogsConfig      `toml:"logs"`
	Metrics             MetricsConfig   `toml:"metrics"`
	BookingService      ServiceConfig   `toml:"booking_service"`
	RoomService         ServiceConfig   `toml:"room_service"`
	ApprovalService     ServiceConfig   `toml:"approval_service"`     // пустой url отключает согласования
	NotificationService ServiceConfig   `toml:"notification_service"` // пустой url отключает историю уведомлений
	Directory           DirectoryConfig `toml:"directory"`
	Database            DatabaseConfig  `toml:"database"`
	Cache               CacheConfig     `toml:"cache"`
	Policy              PolicyConfig    `toml:"policy"`
	Schedule            ScheduleConfig  `toml:"schedule"`
	RateLimit           RateLimitConfig `toml:"rate_limit"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type ServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

type DirectoryConfig struct {
	Source string `toml:"source"` // http | postgres
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

type PolicyConfig struct {
	TimeZone                string `toml:"time_zone"`
	MinDurationMinutes      int    `toml:"min_duration_minutes"`
	RescheduleRequireFuture bool   `toml:"reschedule_require_future"`
}

// ScheduleConfig рабочие часы для расписания комнаты
type ScheduleConfig struct {
	OpenTime    string `toml:"open_time"`  // HH:MM
	CloseTime   string `toml:"close_time"` // HH:MM
	SlotMinutes int    `toml:"slot_minutes"`
	AdvanceDays int    `toml:"advance_days"` // 0 - без ограничения
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Load читает TOML файл, затем необязательный .env и переменные окружения
func Load(path string) (*Config, error) {
	return load(path, ".env")
}

func load(path, envFile string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:                LogsConfig{Level: "info"},
		Metrics:             MetricsConfig{Path: "/metrics", ServiceName: "room-booking-gateway"},
		BookingService:      ServiceConfig{Timeout: 5},
		RoomService:         ServiceConfig{Timeout: 5},
		ApprovalService:     ServiceConfig{Timeout: 5},
		NotificationService: ServiceConfig{Timeout: 5},
		Directory:           DirectoryConfig{Source: DirectorySourceHTTP},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Cache:     CacheConfig{Addr: "localhost:6379", TTLSeconds: 60},
		Policy:    PolicyConfig{TimeZone: "UTC", MinDurationMinutes: 15},
		Schedule:  ScheduleConfig{OpenTime: "08:00", CloseTime: "20:00", SlotMinutes: 30},
		RateLimit: RateLimitConfig{RequestsPerSecond: 5, Burst: 10},
	}
}

// applyEnv переопределяет значения из окружения
func (c *Config) applyEnv() error {
	overrides := map[string]*string{
		"BOOKING_SERVICE_URL":      &c.BookingService.URL,
		"ROOM_SERVICE_URL":         &c.RoomService.URL,
		"APPROVAL_SERVICE_URL":     &c.ApprovalService.URL,
		"NOTIFICATION_SERVICE_URL": &c.NotificationService.URL,
		"DB_PASSWORD":              &c.Database.Password,
		"REDIS_PASSWORD":           &c.Cache.Password,
		"LOG_LEVEL":                &c.Logs.Level,
	}
	for key, dst := range overrides {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("HTTP_PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: HTTP_PORT: %v", ErrInvalidConfig, err)
		}
		c.Server.HTTPPort = port
	}

	return nil
}

// Validate проверяет обязательные поля и допустимые значения
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if err := validateURL("booking_service.url", c.BookingService.URL); err != nil {
		return err
	}

	if c.ApprovalService.URL != "" {
		if err := validateURL("approval_service.url", c.ApprovalService.URL); err != nil {
			return err
		}
	}
	if c.NotificationService.URL != "" {
		if err := validateURL("notification_service.url", c.NotificationService.URL); err != nil {
			return err
		}
	}

	switch c.Directory.Source {
	case DirectorySourceHTTP:
		if err := validateURL("room_service.url", c.RoomService.URL); err != nil {
			return err
		}
	case DirectorySourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres directory", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown directory.source %q", ErrInvalidConfig, c.Directory.Source)
	}

	if _, err := c.Policy.Location(); err != nil {
		return fmt.Errorf("%w: policy.time_zone %q: %v", ErrInvalidConfig, c.Policy.TimeZone, err)
	}
	if c.Policy.MinDurationMinutes < 0 {
		return fmt.Errorf("%w: policy.min_duration_minutes must not be negative", ErrInvalidConfig)
	}

	if err := c.Schedule.validate(); err != nil {
		return err
	}

	if c.Cache.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("%w: cache.addr is required when cache is enabled", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: rate_limit requires positive requests_per_second and burst", ErrInvalidConfig)
	}

	return nil
}

// DSN строка подключения к Postgres
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location часовой пояс, в котором вводятся дата и время
func (p PolicyConfig) Location() (*time.Location, error) {
	if p.TimeZone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(p.TimeZone)
}

func (s ScheduleConfig) validate() error {
	open, err := types.NewTimeStringFromString(s.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: schedule.open_time: %v", ErrInvalidConfig, err)
	}
	closing, err := types.NewTimeStringFromString(s.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: schedule.close_time: %v", ErrInvalidConfig, err)
	}
	if !open.IsBefore(closing) {
		return fmt.Errorf("%w: schedule.open_time must be before schedule.close_time", ErrInvalidConfig)
	}
	if s.SlotMinutes <= 0 {
		return fmt.Errorf("%w: schedule.slot_minutes must be positive", ErrInvalidConfig)
	}
	if s.AdvanceDays < 0 {
		return fmt.Errorf("%w: schedule.advance_days must not be negative", ErrInvalidConfig)
	}
	return nil
}

// CacheTTL время жизни кэша справочника
func (c CacheConfig) CacheTTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

func validateURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidConfig, field)
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: %s %q is not an absolute URL", ErrInvalidConfig, field, raw)
	}
	return nil
}
