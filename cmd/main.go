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

	cancelAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_appointment"
	createBlockedTimeHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_blocked_time"
	createClientHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_client"
	deleteBlockedTimeHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_blocked_time"
	deleteClientHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/delete_client"
	getAppointmentsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_appointments"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_available_slots"
	getClientsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_clients"
	getDashboardHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_dashboard"
	getManicuristsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_manicurists"
	getNextAvailableSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_next_available_slots"
	updateAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_appointment"
	updateClientHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_client"
	updateScheduleHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_schedule"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	clientRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/client"
	jobsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/jobs"
	manicuristRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/manicurist"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	availabilityService "github.com/m04kA/SMC-AppointmentService/internal/service/availability"
	clientsService "github.com/m04kA/SMC-AppointmentService/internal/service/clients"
	dashboardService "github.com/m04kA/SMC-AppointmentService/internal/service/dashboard"
	manicuristsService "github.com/m04kA/SMC-AppointmentService/internal/service/manicurists"
	remindersService "github.com/m04kA/SMC-AppointmentService/internal/service/reminders"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
	getNextAvailableSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_next_available_slots"
	updateAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
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

	log.Info("Starting SMC-AppointmentService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository *appointmentRepo.Repository
		manicuristRepository  *manicuristRepo.Repository
		clientRepository      *clientRepo.Repository
		serviceRepository     *serviceRepo.Repository
		jobsRepository        *jobsRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		manicuristRepository = manicuristRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		serviceRepository = serviceRepo.NewRepository(wrappedDB)
		jobsRepository = jobsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		manicuristRepository = manicuristRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		serviceRepository = serviceRepo.NewRepository(db)
		jobsRepository = jobsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		appointmentRepository,
		manicuristRepository,
		log,
	)
	remindersSvc := remindersService.NewService(
		jobsRepository,
		appointmentRepository,
		remindersService.RealTimeProvider{},
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		remindersSvc,
		appointmentsService.RealTimeProvider{},
		log,
	)
	clientsSvc := clientsService.NewService(
		clientRepository,
		appointmentRepository,
		clientsService.RealTimeProvider{},
		log,
	)
	manicuristsSvc := manicuristsService.NewService(
		manicuristRepository,
		txMgr,
		log,
	)
	dashboardSvc := dashboardService.NewService(
		appointmentRepository,
		dashboardService.RealTimeProvider{},
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		manicuristRepository,
		appointmentRepository,
		log,
	)
	getNextAvailableSlotsUseCase := getNextAvailableSlotsUC.NewUseCase(
		manicuristRepository,
		appointmentRepository,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		clientRepository,
		manicuristRepository,
		availabilitySvc,
		remindersSvc,
		txMgr,
		log,
	)
	updateAppointmentUseCase := updateAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		manicuristRepository,
		availabilitySvc,
		remindersSvc,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getNextAvailableSlots := getNextAvailableSlotsHandler.NewHandler(getNextAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	updateAppointment := updateAppointmentHandler.NewHandler(updateAppointmentUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	createClient := createClientHandler.NewHandler(clientsSvc, log)
	getClients := getClientsHandler.NewHandler(clientsSvc, log)
	updateClient := updateClientHandler.NewHandler(clientsSvc, log)
	deleteClient := deleteClientHandler.NewHandler(clientsSvc, log)
	getManicurists := getManicuristsHandler.NewHandler(manicuristsSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(manicuristsSvc, log)
	createBlockedTime := createBlockedTimeHandler.NewHandler(manicuristsSvc, log)
	deleteBlockedTime := deleteBlockedTimeHandler.NewHandler(manicuristsSvc, log)
	getDashboard := getDashboardHandler.NewHandler(dashboardSvc, log)

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

	// Свободные слоты мастера на дату
	api.HandleFunc("/manicurists/{manicuristId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Ближайшие свободные слоты по всем мастерам
	api.HandleFunc("/available-slots/next",
		getNextAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", getAppointments.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointments.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", updateAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Клиенты ---
	protected.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/clients", getClients.HandleSearch).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", getClients.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", updateClient.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/{clientId}", deleteClient.Handle).Methods(http.MethodDelete)

	// --- Мастера и графики ---
	protected.HandleFunc("/manicurists", getManicurists.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/manicurists/{manicuristId}", getManicurists.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/manicurists/{manicuristId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/manicurists/{manicuristId}/blocked-times", createBlockedTime.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/blocked-times/{blockedTimeId}", deleteBlockedTime.Handle).Methods(http.MethodDelete)

	// --- Аналитика салона ---
	protected.HandleFunc("/businesses/{businessId}/dashboard/stats", getDashboard.HandleStats).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/dashboard/productivity", getDashboard.HandleProductivity).Methods(http.MethodGet)

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
