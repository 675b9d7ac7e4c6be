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

	cancelBookingHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/create_booking"
	createPassHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/create_pass"
	createSpaceHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/create_space"
	deleteSpaceHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/delete_space"
	getAvailabilityHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/get_booking"
	getSpaceHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/get_space"
	getStatsHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/get_stats"
	getUserBookingsHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/get_user_bookings"
	listPassesHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/list_passes"
	listSpacesHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/list_spaces"
	purchasePassHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/purchase_pass"
	searchBookingsHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/search_bookings"
	updatePassHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/update_pass"
	updateSpaceHandler "github.com/m04kA/CWS-BookingService/internal/api/handlers/update_space"
	"github.com/m04kA/CWS-BookingService/internal/api/middleware"
	"github.com/m04kA/CWS-BookingService/internal/config"
	bookingRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/booking"
	passRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/pass"
	paymentRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/payment"
	spaceRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/space"
	userRepo "github.com/m04kA/CWS-BookingService/internal/infra/storage/user"
	authServiceClient "github.com/m04kA/CWS-BookingService/internal/integrations/authservice"
	bookingsService "github.com/m04kA/CWS-BookingService/internal/service/bookings"
	catalogService "github.com/m04kA/CWS-BookingService/internal/service/catalog"
	statsService "github.com/m04kA/CWS-BookingService/internal/service/stats"
	createBookingUC "github.com/m04kA/CWS-BookingService/internal/usecase/create_booking"
	getAvailabilityUC "github.com/m04kA/CWS-BookingService/internal/usecase/get_availability"
	purchasePassUC "github.com/m04kA/CWS-BookingService/internal/usecase/purchase_pass"
	"github.com/m04kA/CWS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CWS-BookingService/pkg/logger"
	"github.com/m04kA/CWS-BookingService/pkg/metrics"
	"github.com/m04kA/CWS-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/CWS-BookingService/pkg/txmanager"
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

	log.Info("Starting CWS-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент AuthService
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (AuthService=%s timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		spaceRepository   *spaceRepo.Repository
		passRepository    *passRepo.Repository
		userRepository    *userRepo.Repository
		paymentRepository *paymentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		spaceRepository = spaceRepo.NewRepository(wrappedDB)
		passRepository = passRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		spaceRepository = spaceRepo.NewRepository(db)
		passRepository = passRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		userRepository,
		log,
	)
	catalogSvc := catalogService.NewService(
		spaceRepository,
		passRepository,
		userRepository,
		log,
	)
	statsSvc := statsService.NewService(
		bookingRepository,
		paymentRepository,
		spaceRepository,
		userRepository,
		log,
	)

	// Инициализируем use cases
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		spaceRepository,
		bookingRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		spaceRepository,
		bookingRepository,
		userRepository,
		txMgr,
		log,
	)

	purchasePassUseCase := purchasePassUC.NewUseCase(
		passRepository,
		spaceRepository,
		bookingRepository,
		userRepository,
		paymentRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	purchasePass := purchasePassHandler.NewHandler(purchasePassUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	searchBookings := searchBookingsHandler.NewHandler(bookingSvc, log)
	listSpaces := listSpacesHandler.NewHandler(catalogSvc, log)
	getSpace := getSpaceHandler.NewHandler(catalogSvc, log)
	createSpace := createSpaceHandler.NewHandler(catalogSvc, log)
	updateSpace := updateSpaceHandler.NewHandler(catalogSvc, log)
	deleteSpace := deleteSpaceHandler.NewHandler(catalogSvc, log)
	listPasses := listPassesHandler.NewHandler(catalogSvc, log)
	createPass := createPassHandler.NewHandler(catalogSvc, log)
	updatePass := updatePassHandler.NewHandler(catalogSvc, log)
	getStats := getStatsHandler.NewHandler(statsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог пространств
	api.HandleFunc("/spaces", listSpaces.Handle).Methods(http.MethodGet)
	api.HandleFunc("/spaces/{spaceId}", getSpace.Handle).Methods(http.MethodGet)

	// Доступность пространства на дату
	api.HandleFunc("/spaces/{spaceId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Каталог тарифов
	api.HandleFunc("/passes", listPasses.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (X-User-ID header или Bearer токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authClient, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// --- Абонементы ---
	protected.HandleFunc("/passes/purchase", purchasePass.Handle).Methods(http.MethodPost)

	// --- Администрирование ---
	protected.HandleFunc("/admin/bookings", searchBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/admin/spaces", createSpace.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/spaces/{spaceId}", updateSpace.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/admin/spaces/{spaceId}", deleteSpace.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/admin/passes", createPass.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/admin/passes/{passId}", updatePass.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/admin/stats", getStats.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
