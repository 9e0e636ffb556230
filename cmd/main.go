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

	checkoutBookingHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/checkout_booking"
	computePriceHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/compute_price"
	deleteBookingHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/delete_booking"
	editBookingHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/edit_booking"
	exportBookingsHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/export_bookings"
	getAuthStatusHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/get_auth_status"
	getCatalogHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/get_catalog"
	getReceiptHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/get_receipt"
	getSetHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/get_set"
	listBookingsHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/list_bookings"
	loginHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/logout"
	registerHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/register"
	submitBookingHandler "github.com/m04kA/SMC-CateringService/internal/api/handlers/submit_booking"
	"github.com/m04kA/SMC-CateringService/internal/api/middleware"
	"github.com/m04kA/SMC-CateringService/internal/config"
	"github.com/m04kA/SMC-CateringService/internal/infra/export"
	"github.com/m04kA/SMC-CateringService/internal/infra/notifier"
	"github.com/m04kA/SMC-CateringService/internal/infra/receipt"
	bookingRepo "github.com/m04kA/SMC-CateringService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CateringService/internal/infra/storage/document"
	"github.com/m04kA/SMC-CateringService/internal/pricing"
	authService "github.com/m04kA/SMC-CateringService/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-CateringService/internal/service/bookings"
	catalogService "github.com/m04kA/SMC-CateringService/internal/service/catalog"
	checkoutBookingUC "github.com/m04kA/SMC-CateringService/internal/usecase/checkout_booking"
	submitBookingUC "github.com/m04kA/SMC-CateringService/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-CateringService/pkg/logger"
	"github.com/m04kA/SMC-CateringService/pkg/metrics"
)

// recorder объединяет все интерфейсы метрик, которые требуют слои сервиса
type recorder interface {
	BookingSaved(total int)
	BookingDeleted()
	BookingEdited(mode string)
	ValidationFailed(field string)
	ConfirmationDeclined(operation string)
	StoreCorrupted()
}

const notifierHistory = 20

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

	log.Info("Starting SMC-CateringService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var rec recorder = metrics.Nop{}

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		rec = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Выбираем хранилище документов
	var store bookingRepo.DocumentStore

	switch cfg.Storage.Driver {
	case config.StorageMemory:
		store = document.NewMemoryStore()
		log.Warn("Using in-memory storage, data is lost on restart")

	case config.StorageFile:
		store = document.NewFileStore(cfg.Storage.FilePath)
		log.Info("Using file storage at %s", cfg.Storage.FilePath)

	case config.StoragePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.Ping(); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		pgStore := document.NewPostgresStore(db)
		if err := pgStore.EnsureSchema(context.Background()); err != nil {
			log.Fatal("Failed to prepare schema: %v", err)
		}
		store = pgStore

		if cfg.Metrics.Enabled {
			if err := metricsCollector.RegisterDB(db, cfg.Database.DBName); err != nil {
				log.Warn("Failed to register database metrics: %v", err)
			}
		}
	}

	// Инициализируем репозитории и движок цен
	bookingRepository := bookingRepo.NewRepository(store, log, rec)
	pricingEngine := pricing.NewEngine(cfg.BuildCatalog())

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		pricingEngine,
		rec,
		cfg.Booking.AtomicEdit,
		log,
	)
	catalogSvc := catalogService.NewService(pricingEngine, log)
	authSvc := authService.NewService(store, log)

	if err := authSvc.EnsureUsers(context.Background()); err != nil {
		log.Fatal("Failed to initialize users: %v", err)
	}

	// Инициализируем use cases
	submitBookingUseCase := submitBookingUC.NewUseCase(
		bookingRepository,
		pricingEngine,
		notifier.NewLogNotifier(log, notifierHistory),
		rec,
		cfg.Booking.AtomicEdit,
		log,
	)
	checkoutBookingUseCase := checkoutBookingUC.NewUseCase(bookingRepository, pricingEngine, log)

	// Инициализируем handlers
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	editBooking := editBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	checkoutBooking := checkoutBookingHandler.NewHandler(checkoutBookingUseCase, log)
	getReceipt := getReceiptHandler.NewHandler(checkoutBookingUseCase, receipt.NewPDFRenderer(), log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingSvc, export.NewXLSXExporter(), log)
	computePrice := computePriceHandler.NewHandler(bookingSvc, log)
	getCatalog := getCatalogHandler.NewHandler(catalogSvc, log)
	getSet := getSetHandler.NewHandler(catalogSvc, log)
	login := loginHandler.NewHandler(authSvc, log)
	register := registerHandler.NewHandler(authSvc, log)
	logout := logoutHandler.NewHandler(authSvc, log)
	getAuthStatus := getAuthStatusHandler.NewHandler(authSvc)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без входа)
	// ============================================================

	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/status", getAuthStatus.Handle).Methods(http.MethodGet)

	// Меню и наборы
	api.HandleFunc("/catalog", getCatalog.Handle).Methods(http.MethodGet)
	api.HandleFunc("/catalog/sets/{set}", getSet.Handle).Methods(http.MethodGet)

	// Живой расчёт цены черновика
	api.HandleFunc("/price", computePrice.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют входа)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireLogin(authSvc, log))

	// --- Бронирования ---
	protected.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Экспорт регистрируется раньше {ref}, иначе "export.xlsx" уйдёт в ссылку
	protected.HandleFunc("/bookings/export.xlsx", exportBookings.Handle).Methods(http.MethodGet)

	protected.HandleFunc("/bookings/{ref}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{ref}/edit", editBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{ref}/checkout", checkoutBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{ref}/receipt.pdf", getReceipt.Handle).Methods(http.MethodGet)

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
