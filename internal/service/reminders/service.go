package reminders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ErrInternal внутренняя ошибка сервиса
var ErrInternal = errors.New("service/reminders: internal error")

// Окно выборки для повторного планирования напоминаний:
// записи, до начала которых осталось примерно 24 часа
const (
	reconcileWindowBack    = 15 * time.Minute
	reconcileWindowForward = 60 * time.Minute
)

// Service планирует отложенные WhatsApp-уведомления через очередь заданий.
// Идентификаторы заданий детерминированы, поэтому повторное планирование
// перезаписывает существующее задание вместо создания дубликата
type Service struct {
	queue           JobQueue
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр планировщика уведомлений
func NewService(
	queue JobQueue,
	appointmentRepo AppointmentRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		queue:           queue,
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// ReminderJobID детерминированный ID задания-напоминания для записи
func ReminderJobID(appointmentID string) string { return "reminder-" + appointmentID }

// ConfirmationJobID детерминированный ID задания-подтверждения для записи
func ConfirmationJobID(appointmentID string) string { return "confirm-" + appointmentID }

// CancellationJobID детерминированный ID задания об отмене для записи
func CancellationJobID(appointmentID string) string { return "cancel-" + appointmentID }

// ScheduleReminder планирует напоминание о записи.
// До начала больше суток - напоминание за 24 часа, меньше - за час.
// Если напоминание уже должно было уйти, задание не ставится
func (s *Service) ScheduleReminder(ctx context.Context, appointmentID string, startAt time.Time) error {
	now := s.timeProvider.Now()
	until := startAt.Sub(now)

	lead := domain.ReminderLeadLong
	if until <= domain.ReminderLeadLong {
		lead = domain.ReminderLeadShort
	}

	delay := until - lead
	if delay <= 0 {
		s.logger.Info("ScheduleReminder: appointment=%s starts in %s, reminder skipped", appointmentID, until)
		return nil
	}

	_, err := s.queue.Enqueue(ctx, ReminderJobID(appointmentID), appointmentID, domain.NotificationReminder24h, now.Add(delay))
	if err != nil {
		s.logger.Error("ScheduleReminder: enqueue failed for appointment=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: ScheduleReminder - enqueue: %v", ErrInternal, err)
	}

	s.logger.Info("ScheduleReminder: appointment=%s reminder scheduled in %s", appointmentID, delay)
	return nil
}

// EnqueueConfirmation ставит немедленное подтверждение записи
func (s *Service) EnqueueConfirmation(ctx context.Context, appointmentID string) error {
	_, err := s.queue.Enqueue(ctx, ConfirmationJobID(appointmentID), appointmentID, domain.NotificationConfirmation, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("EnqueueConfirmation: enqueue failed for appointment=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: EnqueueConfirmation - enqueue: %v", ErrInternal, err)
	}
	return nil
}

// EnqueueCancellation снимает отложенное напоминание и ставит немедленное
// уведомление об отмене
func (s *Service) EnqueueCancellation(ctx context.Context, appointmentID string) error {
	if err := s.queue.Remove(ctx, ReminderJobID(appointmentID)); err != nil {
		s.logger.Warn("EnqueueCancellation: failed to remove reminder job for appointment=%s: %v", appointmentID, err)
	}

	_, err := s.queue.Enqueue(ctx, CancellationJobID(appointmentID), appointmentID, domain.NotificationCancellation, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("EnqueueCancellation: enqueue failed for appointment=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: EnqueueCancellation - enqueue: %v", ErrInternal, err)
	}
	return nil
}

// ReconcileReminders восстанавливает напоминания для записей, до начала которых
// осталось около суток и по которым напоминание не отправлено и не поставлено.
// Безопасно запускать многократно: выборка исключает уже обработанные записи
func (s *Service) ReconcileReminders(ctx context.Context) (int, error) {
	now := s.timeProvider.Now()
	from := now.Add(domain.ReminderLeadLong - reconcileWindowBack)
	to := now.Add(domain.ReminderLeadLong + reconcileWindowForward)

	appointments, err := s.appointmentRepo.ListNeedingReminder(ctx, from, to)
	if err != nil {
		s.logger.Error("ReconcileReminders: repository error: %v", err)
		return 0, fmt.Errorf("%w: ReconcileReminders - repository error: %v", ErrInternal, err)
	}

	scheduled := 0
	for _, appt := range appointments {
		if err := s.ScheduleReminder(ctx, appt.ID, appt.StartAt); err != nil {
			s.logger.Error("ReconcileReminders: failed to schedule reminder for appointment=%s: %v", appt.ID, err)
			continue
		}
		scheduled++
	}

	if scheduled > 0 {
		s.logger.Info("ReconcileReminders: rescheduled %d reminders", scheduled)
	}
	return scheduled, nil
}
