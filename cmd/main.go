package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createBookingHandler "github.com/m04kA/SMC-BoxBooking/internal/api/handlers/create_booking"
	getBankAccountsHandler "github.com/m04kA/SMC-BoxBooking/internal/api/handlers/get_bank_accounts"
	getTimeOptionsHandler "github.com/m04kA/SMC-BoxBooking/internal/api/handlers/get_time_options"
	listBookingsHandler "github.com/m04kA/SMC-BoxBooking/internal/api/handlers/list_bookings"
	quoteBookingHandler "github.com/m04kA/SMC-BoxBooking/internal/api/handlers/quote_booking"
	"github.com/m04kA/SMC-BoxBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BoxBooking/internal/config"
	"github.com/m04kA/SMC-BoxBooking/internal/infra/blobstore"
	bookingRepo "github.com/m04kA/SMC-BoxBooking/internal/infra/storage/booking"
	couponRepo "github.com/m04kA/SMC-BoxBooking/internal/infra/storage/coupon"
	paymentAccountRepo "github.com/m04kA/SMC-BoxBooking/internal/infra/storage/payment_account"
	bookingsService "github.com/m04kA/SMC-BoxBooking/internal/service/bookings"
	paymentAccountsService "github.com/m04kA/SMC-BoxBooking/internal/service/payment_accounts"
	createBookingUC "github.com/m04kA/SMC-BoxBooking/internal/usecase/create_booking"
	getTimeOptionsUC "github.com/m04kA/SMC-BoxBooking/internal/usecase/get_time_options"
	quoteBookingUC "github.com/m04kA/SMC-BoxBooking/internal/usecase/quote_booking"
	"github.com/m04kA/SMC-BoxBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BoxBooking/pkg/logger"
	"github.com/m04kA/SMC-BoxBooking/pkg/metrics"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to TOML config")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting SMC-BoxBooking...")
	log.Info("Configuration loaded from %s", *configPath)

	// Даты и время слотов считаются в зоне площадки
	loc, err := cfg.Venue.Location()
	if err != nil {
		log.Fatal("Failed to load venue timezone: %v", err)
	}
	time.Local = loc
	log.Info("Venue timezone: %s", loc)

	// Инициализируем метрики (если включены)
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
	log.Debug("Database pool: max_open=%d, max_idle=%d, conn_max_lifetime=%ds",
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	couponRepository := couponRepo.NewRepository(executor)
	paymentAccountRepository := paymentAccountRepo.NewRepository(executor)

	// Хранилище скриншотов оплаты
	blobStore := blobstore.New(cfg.Upload.Dir, cfg.Upload.PublicBaseURL)
	if err := os.MkdirAll(blobStore.Root(), 0o755); err != nil {
		log.Fatal("Failed to create upload dir %s: %v", blobStore.Root(), err)
	}
	log.Info("Payment screenshots stored in %s (public base %s, max %d bytes)",
		blobStore.Root(), cfg.Upload.PublicBaseURL, cfg.Upload.MaxBytes)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	paymentAccountSvc := paymentAccountsService.NewService(paymentAccountRepository, log)

	// Инициализируем use cases
	quoteBookingUseCase := quoteBookingUC.NewUseCase(
		bookingRepository,
		couponRepository,
		metricsCollector,
		log,
	)

	getTimeOptionsUseCase := getTimeOptionsUC.NewUseCase(log)

	createBookingUseCase := createBookingUC.NewUseCase(
		quoteBookingUseCase,
		bookingRepository,
		couponRepository,
		blobStore,
		metricsCollector,
		createBookingUC.VenueInfo{
			Name:          cfg.Venue.Name,
			Address:       cfg.Venue.Address,
			MapsURL:       cfg.Venue.MapsURL(),
			Coordinates:   cfg.Venue.Coordinates,
			ContactName:   cfg.Venue.ContactName,
			ContactPhones: cfg.Venue.ContactPhones,
			SupportPhone:  cfg.Venue.SupportPhone,
		},
		cfg.Upload.MaxBytes,
		log,
	)

	// Инициализируем handlers
	getTimeOptions := getTimeOptionsHandler.NewHandler(getTimeOptionsUseCase, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBankAccounts := getBankAccountsHandler.NewHandler(paymentAccountSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, cfg.Upload.MaxBytes, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Скриншоты оплаты по публичным ссылкам
	r.PathPrefix("/" + blobstore.UploadsPrefix + "/").
		Handler(http.FileServer(http.Dir(blobStore.Root()))).
		Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// Варианты времени начала и окончания
	api.HandleFunc("/time-options", getTimeOptions.Handle).Methods(http.MethodGet)

	// Расчет стоимости и проверка интервала
	api.HandleFunc("/quotes", quoteBooking.Handle).Methods(http.MethodPost)

	// Занятые интервалы на дату
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Реквизиты для перевода
	api.HandleFunc("/bank-accounts", getBankAccounts.Handle).Methods(http.MethodGet)

	// Подтверждение оплаты и создание бронирования
	var submitHandler http.Handler = http.HandlerFunc(createBooking.Handle)
	if cfg.RateLimit.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s: %v (fail_open=%t)", cfg.Redis.Addr, err, cfg.RateLimit.FailOpen)
		}
		cancelPing()

		limiter := middleware.NewRateLimiter(
			middleware.NewRedisCounter(rdb),
			cfg.RateLimit.Limit,
			cfg.RateLimit.Window(),
			cfg.RateLimit.Prefix,
			cfg.RateLimit.FailOpen,
			cfg.RateLimit.TrustProxy,
			log,
		)
		submitHandler = limiter.Middleware()(submitHandler)
		log.Info("Rate limit on booking submission: %d per %s (trust_proxy=%t)",
			cfg.RateLimit.Limit, cfg.RateLimit.Window(), cfg.RateLimit.TrustProxy)
	}
	api.Handle("/bookings", submitHandler).Methods(http.MethodPost)

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
