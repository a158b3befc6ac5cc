package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	jobsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/jobs"
	notificationRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/notification"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/whatsapp"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	notificationsService "github.com/m04kA/SMC-AppointmentService/internal/service/notifications"
	remindersService "github.com/m04kA/SMC-AppointmentService/internal/service/reminders"
	"github.com/m04kA/SMC-AppointmentService/internal/worker"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("worker.toml")
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

	log.Info("Starting SMC-AppointmentService worker...")
	log.Info("Configuration loaded from worker.toml")

	// Подключаемся к базе данных
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
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(db)
	notificationRepository := notificationRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	jobsRepository := jobsRepo.NewRepository(db)

	// Инициализируем провайдера WhatsApp
	sender, err := whatsapp.NewProvider(whatsapp.ProviderConfig{
		Provider:          cfg.WhatsApp.Provider,
		EvolutionBaseURL:  cfg.WhatsApp.EvolutionBaseURL,
		EvolutionInstance: cfg.WhatsApp.EvolutionInstance,
		EvolutionAPIKey:   cfg.WhatsApp.EvolutionAPIKey,
		MetaPhoneNumberID: cfg.WhatsApp.MetaPhoneNumberID,
		MetaAccessToken:   cfg.WhatsApp.MetaAccessToken,
		Timeout:           time.Duration(cfg.WhatsApp.Timeout) * time.Second,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize WhatsApp provider: %v", err)
	}
	log.Info("WhatsApp provider initialized: %s", cfg.WhatsApp.Provider)

	// Инициализируем сервисы
	notificationsSvc := notificationsService.NewService(
		appointmentRepository,
		notificationRepository,
		settingsRepository,
		sender,
		notificationsService.RealTimeProvider{},
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

	// Собираем воркер
	w := worker.New(
		jobsRepository,
		notificationsSvc,
		appointmentsSvc,
		remindersSvc,
		worker.RealTimeProvider{},
		log,
		worker.Config{
			ImmediatePollInterval: time.Duration(cfg.Worker.ImmediatePollInterval) * time.Second,
			ReminderPollInterval:  time.Duration(cfg.Worker.ReminderPollInterval) * time.Second,
			BatchSize:             cfg.Worker.BatchSize,
			Concurrency:           cfg.Worker.Concurrency,
			AutoCompleteInterval:  time.Duration(cfg.Worker.AutoCompleteInterval) * time.Second,
			ReconcileInterval:     time.Duration(cfg.Worker.ReconcileInterval) * time.Second,
		},
	)

	// Запускаем и ждем сигнал завершения
	ctx, cancel := context.WithCancel(context.Background())

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Info("Shutting down worker...")
		cancel()
	}()

	w.Run(ctx)

	log.Info("Worker stopped gracefully")
}
