package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

// Service сервис для работы с записями: выборки по датам, отмена, автозавершение
type Service struct {
	appointmentRepo AppointmentRepository
	reminders       RemindersService
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	repo AppointmentRepository,
	reminders RemindersService,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: repo,
		reminders:       reminders,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID возвращает запись с данными клиента, мастера и услуги
func (s *Service) GetByID(ctx context.Context, id string) (*domain.AppointmentDetails, error) {
	details, err := s.appointmentRepo.GetDetailsByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return details, nil
}

// GetByDate возвращает записи за календарный день, отсортированные по времени начала
func (s *Service) GetByDate(ctx context.Context, date time.Time, filter domain.AppointmentsFilter) ([]*domain.AppointmentDetails, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)

	list, err := s.appointmentRepo.ListDetailsByRange(ctx, dayStart, dayEnd, filter)
	if err != nil {
		s.logger.Error("GetByDate: repository error for date=%s: %v", dayStart.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByDate - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// GetByWeek возвращает записи за неделю [weekStart, weekStart+7d)
func (s *Service) GetByWeek(ctx context.Context, weekStart time.Time, filter domain.AppointmentsFilter) ([]*domain.AppointmentDetails, error) {
	from := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day(), 0, 0, 0, 0, weekStart.Location())
	to := from.AddDate(0, 0, 7).Add(-time.Millisecond)

	list, err := s.appointmentRepo.ListDetailsByRange(ctx, from, to, filter)
	if err != nil {
		s.logger.Error("GetByWeek: repository error for week=%s: %v", from.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetByWeek - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// Cancel отменяет запись. Идемпотентна: повторная отмена возвращает запись как есть,
// без повторного уведомления. Завершенную запись отменить нельзя
func (s *Service) Cancel(ctx context.Context, id string) (*domain.Appointment, error) {
	s.logger.Info("Cancel: cancelling appointment=%s", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment=%s not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for appointment=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.Status == domain.StatusCancelled {
		return appt, nil
	}
	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment=%s in status=%s cannot be cancelled", id, appt.Status)
		return nil, ErrNotCancellable
	}

	updated, err := s.appointmentRepo.Update(ctx, id, appointmentRepo.UpdateFields{
		Status: ptr.Ptr(domain.StatusCancelled),
	})
	if err != nil {
		s.logger.Error("Cancel: update error for appointment=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - update error: %v", ErrInternal, err)
	}

	// Уведомление ставится в очередь после фиксации отмены.
	// Ошибка постановки не откатывает отмену
	if err := s.reminders.EnqueueCancellation(ctx, id); err != nil {
		s.logger.Error("Cancel: failed to enqueue cancellation for appointment=%s: %v", id, err)
	}

	s.logger.Info("Cancel: appointment=%s cancelled", id)
	return updated, nil
}

// AutoCompleteExpired переводит истекшие активные записи в COMPLETED и возвращает их число
func (s *Service) AutoCompleteExpired(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()

	count, err := s.appointmentRepo.AutoCompleteExpired(ctx, now)
	if err != nil {
		s.logger.Error("AutoCompleteExpired: repository error: %v", err)
		return 0, fmt.Errorf("%w: AutoCompleteExpired - repository error: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Info("AutoCompleteExpired: completed %d expired appointments", count)
	}
	return count, nil
}
