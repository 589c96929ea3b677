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
	_ "time/tzdata"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TurnosService/internal/api/handlers"
	activateBusinessHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/activate_business"
	cancelBookingHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/create_booking"
	createServiceHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/create_service"
	deleteBookingHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/delete_booking"
	deleteServiceHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/delete_service"
	getAvailableSlotsHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/get_booking"
	getMyBusinessHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/get_my_business"
	getMyScheduleHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/get_my_schedule"
	getPublicBusinessHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/get_public_business"
	getPublicScheduleHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/get_public_schedule"
	getStatsSummaryHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/get_stats_summary"
	listBookingsHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/list_bookings"
	listBusinessesHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/list_businesses"
	listCategoriesHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/list_categories"
	listMyServicesHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/list_my_services"
	listPublicServicesHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/list_public_services"
	replaceScheduleHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/replace_schedule"
	updateMyBusinessHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/update_my_business"
	updateServiceHandler "github.com/m04kA/SMC-TurnosService/internal/api/handlers/update_service"
	"github.com/m04kA/SMC-TurnosService/internal/api/middleware"
	"github.com/m04kA/SMC-TurnosService/internal/config"
	bookingRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/booking"
	businessRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/business"
	scheduleRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-TurnosService/internal/infra/storage/servicecatalog"
	"github.com/m04kA/SMC-TurnosService/internal/integrations/bookingevents"
	bookingsService "github.com/m04kA/SMC-TurnosService/internal/service/bookings"
	businessesService "github.com/m04kA/SMC-TurnosService/internal/service/businesses"
	catalogService "github.com/m04kA/SMC-TurnosService/internal/service/catalog"
	scheduleService "github.com/m04kA/SMC-TurnosService/internal/service/schedule"
	statsService "github.com/m04kA/SMC-TurnosService/internal/service/stats"
	createBookingUC "github.com/m04kA/SMC-TurnosService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-TurnosService/internal/usecase/get_available_slots"
	replaceScheduleUC "github.com/m04kA/SMC-TurnosService/internal/usecase/replace_schedule"
	"github.com/m04kA/SMC-TurnosService/pkg/cache"
	"github.com/m04kA/SMC-TurnosService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurnosService/pkg/logger"
	"github.com/m04kA/SMC-TurnosService/pkg/metrics"
	"github.com/m04kA/SMC-TurnosService/pkg/txmanager"
)

// EventPublisher издатель событий бронирований
type EventPublisher interface {
	Publish(ctx context.Context, event bookingevents.Event) error
	Close() error
}

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

	log.Info("Starting SMC-TurnosService...")

	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %q: %v", cfg.Booking.Timezone, err)
	}
	log.Info("Business timezone: %s", location)

	// Метрики (если включены). С nil коллектором обёртки работают как прокси.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := wrappedDB.PingContext(pingCtx); err != nil {
		cancelPing()
		log.Fatal("Failed to ping database: %v", err)
	}
	cancelPing()
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Redis кэш публичных профилей (необязателен)
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s, continuing without warm cache: %v", cfg.Redis.Addr, err)
		} else {
			log.Info("Redis cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
		cancelPing()
	}
	businessCache := cache.New(redisClient, "turnos:", time.Duration(cfg.Redis.TTL)*time.Second)

	// Публикация событий
	var publisher EventPublisher = bookingevents.NoopPublisher{}
	if cfg.Kafka.Enabled {
		publisher = bookingevents.NewKafkaPublisher(
			cfg.Kafka.Brokers,
			cfg.Kafka.Topic,
			time.Duration(cfg.Kafka.Timeout)*time.Second,
			log,
		)
		log.Info("Kafka publisher enabled (brokers=%v, topic=%s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error("Failed to close event publisher: %v", err)
		}
	}()

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	businessRepository := businessRepo.NewCachedRepository(businessRepo.NewRepository(wrappedDB), businessCache, log)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		businessRepository,
		serviceRepository,
		txMgr,
		publisher,
		location,
		log,
	)
	businessSvc := businessesService.NewService(businessRepository, businessesService.RandomCodeGenerator{}, log)
	catalogSvc := catalogService.NewService(businessRepository, serviceRepository, log)
	scheduleSvc := scheduleService.NewService(businessRepository, scheduleRepository, log)
	statsSvc := statsService.NewService(bookingRepository, businessRepository, serviceRepository, location, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		businessRepository,
		serviceRepository,
		scheduleRepository,
		txMgr,
		publisher,
		metricsCollector,
		location,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		businessRepository,
		serviceRepository,
		scheduleRepository,
		location,
		cfg.Booking.MaxSlotRangeDays,
		log,
	)
	replaceScheduleUseCase := replaceScheduleUC.NewUseCase(businessRepository, scheduleRepository, txMgr, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, location, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)

	activateBusiness := activateBusinessHandler.NewHandler(businessSvc, log)
	getMyBusiness := getMyBusinessHandler.NewHandler(businessSvc, log)
	updateMyBusiness := updateMyBusinessHandler.NewHandler(businessSvc, log)
	getPublicBusiness := getPublicBusinessHandler.NewHandler(businessSvc, log)
	listBusinesses := listBusinessesHandler.NewHandler(businessSvc, log)
	listCategories := listCategoriesHandler.NewHandler(businessSvc, log)

	listMyServices := listMyServicesHandler.NewHandler(catalogSvc, log)
	listPublicServices := listPublicServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)

	getMySchedule := getMyScheduleHandler.NewHandler(scheduleSvc, log)
	getPublicSchedule := getPublicScheduleHandler.NewHandler(scheduleSvc, log)
	replaceSchedule := replaceScheduleHandler.NewHandler(replaceScheduleUseCase, log)

	getStatsSummary := getStatsSummaryHandler.NewHandler(statsSvc, location, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := wrappedDB.PingContext(ctx); err != nil {
			handlers.RespondError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, с ограничением по IP)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy, log)
		go limiter.Run(time.Minute, stopMetricsCh)
		public.Use(limiter.Middleware)
		log.Info("Rate limit enabled for public routes (rps=%.1f, burst=%d, trust_proxy=%t)",
			cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.TrustProxy)
	}

	public.HandleFunc("/public/businesses/{code}", getPublicBusiness.Handle).Methods(http.MethodGet)
	public.HandleFunc("/public/businesses/{code}/services", listPublicServices.Handle).Methods(http.MethodGet)
	public.HandleFunc("/public/businesses/{code}/schedule", getPublicSchedule.Handle).Methods(http.MethodGet)
	public.HandleFunc("/public/businesses/{code}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	public.HandleFunc("/public/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Каталог бизнесов
	public.HandleFunc("/businesses/categories", listCategories.Handle).Methods(http.MethodGet)
	public.HandleFunc("/businesses", listBusinesses.Handle).Methods(http.MethodGet)

	// ============================================================
	// OWNER ROUTES (требуют X-User-ID header)
	// ============================================================

	owner := api.PathPrefix("/my").Subrouter()
	owner.Use(middleware.Auth)

	// --- Бизнес ---
	owner.HandleFunc("/business", activateBusiness.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/business", getMyBusiness.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/business", updateMyBusiness.Handle).Methods(http.MethodPut)

	// --- Услуги ---
	owner.HandleFunc("/services", listMyServices.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/services/{id}", updateService.Handle).Methods(http.MethodPut)
	owner.HandleFunc("/services/{id}", deleteService.Handle).Methods(http.MethodDelete)

	// --- Расписание ---
	owner.HandleFunc("/schedule", getMySchedule.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/schedule", replaceSchedule.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	owner.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	owner.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	owner.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)
	owner.HandleFunc("/bookings/{id}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	owner.HandleFunc("/bookings/{id}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Статистика ---
	owner.HandleFunc("/stats/summary", getStatsSummary.Handle).Methods(http.MethodGet)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор статистики пула и очистку лимитера
	close(stopMetricsCh)

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
