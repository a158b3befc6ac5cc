package worker

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Config интервалы и лимиты фонового воркера
type Config struct {
	ImmediatePollInterval time.Duration
	ReminderPollInterval  time.Duration
	BatchSize             int
	Concurrency           int
	AutoCompleteInterval  time.Duration
	ReconcileInterval     time.Duration
}

// immediateTypes уведомления, отправляемые сразу после события
var immediateTypes = []domain.NotificationType{
	domain.NotificationConfirmation,
	domain.NotificationCancellation,
}

// reminderTypes уведомления, отправляемые по расписанию
var reminderTypes = []domain.NotificationType{
	domain.NotificationReminder24h,
}

// Worker фоновый процесс: отправка уведомлений, автозавершение записей,
// восстановление напоминаний
type Worker struct {
	jobs         JobQueue
	dispatcher   Dispatcher
	appointments AppointmentsService
	reminders    RemindersService
	timeProvider TimeProvider
	logger       Logger
	cfg          Config
}

// New создает новый экземпляр воркера
func New(
	jobs JobQueue,
	dispatcher Dispatcher,
	appointments AppointmentsService,
	reminders RemindersService,
	timeProvider TimeProvider,
	logger Logger,
	cfg Config,
) *Worker {
	return &Worker{
		jobs:         jobs,
		dispatcher:   dispatcher,
		appointments: appointments,
		reminders:    reminders,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// Run запускает все циклы воркера и блокируется до отмены контекста
func (w *Worker) Run(ctx context.Context) {
	var wg sync.WaitGroup

	wg.Add(4)
	go func() {
		defer wg.Done()
		w.dispatchLoop(ctx, "immediate", immediateTypes, w.cfg.ImmediatePollInterval, w.cfg.BatchSize, w.cfg.Concurrency)
	}()
	go func() {
		defer wg.Done()
		// Напоминания уходят не чаще одного сообщения за интервал опроса,
		// чтобы не упереться в лимиты провайдера WhatsApp
		w.dispatchLoop(ctx, "reminders", reminderTypes, w.cfg.ReminderPollInterval, 1, 1)
	}()
	go func() {
		defer wg.Done()
		w.autoCompleteLoop(ctx)
	}()
	go func() {
		defer wg.Done()
		w.reconcileLoop(ctx)
	}()

	wg.Wait()
	w.logger.Info("Worker stopped")
}

// dispatchLoop опрашивает очередь и отправляет уведомления выбранных типов.
// batch ограничивает число заданий за один тик: для напоминаний он равен 1
func (w *Worker) dispatchLoop(ctx context.Context, lane string, types []domain.NotificationType, interval time.Duration, batch, concurrency int) {
	w.logger.Info("Dispatch lane %q started: poll=%s, batch=%d, concurrency=%d", lane, interval, batch, concurrency)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Dispatch lane %q shutting down", lane)
			return
		case <-ticker.C:
			w.dispatchBatch(ctx, lane, types, batch, concurrency)
		}
	}
}

func (w *Worker) dispatchBatch(ctx context.Context, lane string, types []domain.NotificationType, batch, concurrency int) {
	now := w.timeProvider.Now()

	claimed, err := w.jobs.ClaimDue(ctx, now, types, batch)
	if err != nil {
		w.logger.Error("Dispatch lane %q: failed to claim jobs: %v", lane, err)
		return
	}
	if len(claimed) == 0 {
		return
	}

	w.logger.Info("Dispatch lane %q: claimed %d jobs", lane, len(claimed))

	var wg sync.WaitGroup
	sem := make(chan struct{}, concurrency)

	for _, job := range claimed {
		wg.Add(1)
		sem <- struct{}{}
		go func(job *domain.NotificationJob) {
			defer wg.Done()
			defer func() { <-sem }()
			w.runJob(ctx, job)
		}(job)
	}

	wg.Wait()
}

// runJob отправляет одно уведомление и фиксирует результат в очереди
func (w *Worker) runJob(ctx context.Context, job *domain.NotificationJob) {
	if err := w.dispatcher.Process(ctx, job.AppointmentID, job.Type); err != nil {
		w.logger.Warn("Job %s failed (attempt %d/%d): %v", job.JobID, job.Attempts, job.MaxAttempts, err)
		if failErr := w.jobs.Fail(ctx, job, err.Error(), w.timeProvider.Now()); failErr != nil {
			w.logger.Error("Job %s: failed to record failure: %v", job.JobID, failErr)
		}
		return
	}

	if err := w.jobs.Complete(ctx, job.ID); err != nil {
		w.logger.Error("Job %s: failed to mark complete: %v", job.JobID, err)
		return
	}

	w.logger.Info("Job %s done: appointment=%s, type=%s", job.JobID, job.AppointmentID, job.Type)
}

// autoCompleteLoop переводит прошедшие подтвержденные записи в COMPLETED
func (w *Worker) autoCompleteLoop(ctx context.Context) {
	w.logger.Info("Auto-complete loop started: interval=%s", w.cfg.AutoCompleteInterval)

	w.runAutoComplete(ctx)

	ticker := time.NewTicker(w.cfg.AutoCompleteInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Auto-complete loop shutting down")
			return
		case <-ticker.C:
			w.runAutoComplete(ctx)
		}
	}
}

func (w *Worker) runAutoComplete(ctx context.Context) {
	completed, err := w.appointments.AutoCompleteExpired(ctx)
	if err != nil {
		w.logger.Error("Auto-complete failed: %v", err)
		return
	}
	if completed > 0 {
		w.logger.Info("Auto-completed %d appointments", completed)
	}
}

// reconcileLoop досоздает задания на напоминания, пропущенные при сбоях
func (w *Worker) reconcileLoop(ctx context.Context) {
	w.logger.Info("Reconcile loop started: interval=%s", w.cfg.ReconcileInterval)

	ticker := time.NewTicker(w.cfg.ReconcileInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Reconcile loop shutting down")
			return
		case <-ticker.C:
			scheduled, err := w.reminders.ReconcileReminders(ctx)
			if err != nil {
				w.logger.Error("Reconcile failed: %v", err)
				continue
			}
			if scheduled > 0 {
				w.logger.Info("Reconcile scheduled %d reminders", scheduled)
			}
		}
	}
}
