package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	approveBookingHandler "github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers/approve_booking"
	cancelBookingHandler "github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers/create_booking"
	denyBookingHandler "github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers/deny_booking"
	getNotificationHistoryHandler "github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers/get_notification_history"
	getPendingApprovalsHandler "github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers/get_pending_approvals"
	getRoomScheduleHandler "github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers/get_room_schedule"
	getUserBookingsHandler "github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers/get_user_bookings"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers/healthz"
	rescheduleBookingHandler "github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers/reschedule_booking"
	searchRoomsHandler "github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers/search_rooms"
	transferBookingHandler "github.com/JJnvn/Software-Arch-CPRoom/internal/api/handlers/transfer_booking"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/api/middleware"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/config"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/domain"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/infra/cache/roomcache"
	roomRepo "github.com/JJnvn/Software-Arch-CPRoom/internal/infra/storage/room"
	bookingServiceClient "github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/bookingservice"
	notificationServiceClient "github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/notificationservice"
	roomServiceClient "github.com/JJnvn/Software-Arch-CPRoom/internal/integrations/roomservice"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/service/bookings"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/service/notifications"
	"github.com/JJnvn/Software-Arch-CPRoom/internal/service/rooms"
	approveBookingUC "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/approve_booking"
	cancelBookingUC "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/cancel_booking"
	createBookingUC "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/create_booking"
	denyBookingUC "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/deny_booking"
	getRoomScheduleUC "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/get_room_schedule"
	rescheduleBookingUC "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/reschedule_booking"
	searchRoomsUC "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/search_rooms"
	transferBookingUC "github.com/JJnvn/Software-Arch-CPRoom/internal/usecase/transfer_booking"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/dbmetrics"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/logger"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/metrics"
	"github.com/JJnvn/Software-Arch-CPRoom/pkg/types"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting room booking gateway...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	location, err := cfg.Policy.Location()
	if err != nil {
		log.Fatal("Invalid time zone: %v", err)
	}
	policy := domain.WindowPolicy{
		Location:           location,
		MinDurationMinutes: cfg.Policy.MinDurationMinutes,
	}

	// Клиент сервиса бронирований
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
	).WithMetrics(metricsCollector)
	log.Info("BookingService client initialized (url=%s, timeout=%ds)", cfg.BookingService.URL, cfg.BookingService.Timeout)

	// Клиент сервиса согласований: тот же протокол, что у сервиса бронирований
	var (
		approvalClient  *bookingServiceClient.Client
		approvalService bookings.ApprovalServiceClient
	)
	if cfg.ApprovalService.URL != "" {
		approvalClient = bookingServiceClient.NewClient(
			cfg.ApprovalService.URL,
			time.Duration(cfg.ApprovalService.Timeout)*time.Second,
			log,
		).WithTarget("approval_service").WithMetrics(metricsCollector)
		approvalService = approvalClient
		log.Info("ApprovalService client initialized (url=%s, timeout=%ds)", cfg.ApprovalService.URL, cfg.ApprovalService.Timeout)
	}

	// Клиент сервиса уведомлений
	var notificationClient notifications.NotificationServiceClient
	if cfg.NotificationService.URL != "" {
		notificationClient = notificationServiceClient.NewClient(
			cfg.NotificationService.URL,
			time.Duration(cfg.NotificationService.Timeout)*time.Second,
			log,
		).WithMetrics(metricsCollector)
		log.Info("NotificationService client initialized (url=%s, timeout=%ds)", cfg.NotificationService.URL, cfg.NotificationService.Timeout)
	}

	readiness := map[string]healthz.Check{}

	// Справочник комнат и источник расписания из одного хранилища
	var (
		directory      rooms.RoomDirectory
		scheduleSource getRoomScheduleUC.ScheduleSource
	)
	switch cfg.Directory.Source {
	case config.DirectorySourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Room directory: postgres (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		var executor interface {
			roomRepo.DBExecutor
			PingContext(ctx context.Context) error
		} = db
		if cfg.Metrics.Enabled {
			stopDBMetrics := make(chan struct{})
			defer close(stopDBMetrics)
			executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopDBMetrics)
		}

		repo := roomRepo.NewRepository(executor)
		directory = repo
		scheduleSource = repo
		readiness["postgres"] = executor.PingContext

	default:
		roomClient := roomServiceClient.NewClient(
			cfg.RoomService.URL,
			time.Duration(cfg.RoomService.Timeout)*time.Second,
			log,
		).WithMetrics(metricsCollector)
		directory = roomClient
		scheduleSource = roomClient
		log.Info("Room directory: room service (url=%s, timeout=%ds)", cfg.RoomService.URL, cfg.RoomService.Timeout)
	}

	// Кэш списка комнат (если включен)
	if cfg.Cache.Enabled {
		redisClient := roomcache.NewRedisClient(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		defer redisClient.Close()

		store := roomcache.NewRedisStore(redisClient)
		directory = roomcache.NewCachedDirectory(directory, store, cfg.Directory.Source, cfg.Cache.CacheTTL(), log)
		readiness["redis"] = store.Ping
		log.Info("Room list cache enabled (addr=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
	}

	resolver := rooms.NewResolver(directory, log)

	// Инициализируем use cases
	reschedulePolicy := policy
	reschedulePolicy.RequireFuture = cfg.Policy.RescheduleRequireFuture

	createBookingUseCase := createBookingUC.NewUseCase(resolver, bookingClient, policy, metricsCollector, log)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(bookingClient, reschedulePolicy, metricsCollector, log)
	transferBookingUseCase := transferBookingUC.NewUseCase(bookingClient, metricsCollector, log)
	cancelBookingUseCase := cancelBookingUC.NewUseCase(bookingClient, metricsCollector, log)
	searchRoomsUseCase := searchRoomsUC.NewUseCase(resolver, policy, log)

	getRoomScheduleUseCase, err := getRoomScheduleUC.NewUseCase(scheduleSource, getRoomScheduleUC.Hours{
		Open:        types.TimeString(cfg.Schedule.OpenTime),
		Close:       types.TimeString(cfg.Schedule.CloseTime),
		SlotMinutes: cfg.Schedule.SlotMinutes,
		AdvanceDays: cfg.Schedule.AdvanceDays,
	}, policy, log)
	if err != nil {
		log.Fatal("Invalid schedule config: %v", err)
	}

	// Инициализируем сервисы
	bookingsService := bookings.NewService(bookingClient, approvalService, directory, log)
	notificationsService := notifications.NewService(notificationClient, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	transferBooking := transferBookingHandler.NewHandler(transferBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	searchRooms := searchRoomsHandler.NewHandler(searchRoomsUseCase, log)
	getRoomSchedule := getRoomScheduleHandler.NewHandler(getRoomScheduleUseCase, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsService, log)
	getNotificationHistory := getNotificationHistoryHandler.NewHandler(notificationsService, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	healthz.Register(r, readiness)

	// API prefix, все маршруты требуют X-User-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth)

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled (%.1f req/s, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// --- Комнаты ---
	api.HandleFunc("/rooms/search", searchRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/schedule", getRoomSchedule.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/mine", getUserBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/transfer", transferBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// --- Согласования (права сотрудника проверяет сервис согласований) ---
	if approvalClient != nil {
		approveBooking := approveBookingHandler.NewHandler(approveBookingUC.NewUseCase(approvalClient, metricsCollector, log), log)
		denyBooking := denyBookingHandler.NewHandler(denyBookingUC.NewUseCase(approvalClient, metricsCollector, log), log)
		getPendingApprovals := getPendingApprovalsHandler.NewHandler(bookingsService, log)

		api.HandleFunc("/approvals/pending", getPendingApprovals.Handle).Methods(http.MethodGet)
		api.HandleFunc("/approvals/{bookingId}/approve", approveBooking.Handle).Methods(http.MethodPost)
		api.HandleFunc("/approvals/{bookingId}/deny", denyBooking.Handle).Methods(http.MethodPost)
	}

	// --- Уведомления ---
	if notificationClient != nil {
		api.HandleFunc("/notifications/history", getNotificationHistory.Handle).Methods(http.MethodGet)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
