package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	manicuristRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/manicurist"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

// Коды ошибок PostgreSQL, означающие проигрыш гонки за слот
const (
	pgSerializationFailure = "40001"
	pgUniqueViolation      = "23505"
	pgExclusionViolation   = "23P01"
)

// UseCase use case частичного обновления записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	manicuristRepo  ManicuristRepository
	availability    AvailabilityService
	reminders       RemindersService
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	manicuristRepo ManicuristRepository,
	availability AvailabilityService,
	reminders RemindersService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		manicuristRepo:  manicuristRepo,
		availability:    availability,
		reminders:       reminders,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case обновления записи.
// Перенос времени, смена мастера или услуги повторяют проверки доступности
// с исключением собственной строки записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: appointment=%s", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее состояние записи; терминальные статусы не редактируются
	current, err := uc.appointmentRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("UpdateAppointment: appointment=%s not found", req.ID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("UpdateAppointment: failed to get appointment=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}
	if current.IsTerminal() {
		uc.logger.Warn("UpdateAppointment: appointment=%s in status=%s is not editable", req.ID, current.Status)
		return nil, ErrNotEditable
	}

	// 3. Итоговые значения после применения запроса
	target, fields, err := uc.resolveTarget(ctx, current, req)
	if err != nil {
		return nil, err
	}

	// 4. Перенос требует повторных проверок доступности в транзакции
	if target.rescheduled {
		txErr := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
			available, err := uc.availability.IsSlotAvailable(ctx, target.manicuristID, target.startAt, target.endAt, ptr.Ptr(req.ID))
			if err != nil {
				return err
			}
			if !available {
				return ErrSlotNotAvailable
			}

			conflict, err := uc.availability.ClientOverlappingAppointment(ctx, current.ClientID, target.startAt, target.endAt, ptr.Ptr(req.ID))
			if err != nil {
				return err
			}
			if conflict != nil {
				return fmt.Errorf("%w: from %s to %s", ErrClientConflict,
					conflict.StartAt.Format(time.RFC3339), conflict.EndAt.Format(time.RFC3339))
			}

			_, err = uc.appointmentRepo.Update(ctx, req.ID, fields)
			return err
		})
		if txErr != nil {
			return nil, uc.translateTxError(req, txErr)
		}
	} else if _, err := uc.appointmentRepo.Update(ctx, req.ID, fields); err != nil {
		uc.logger.Error("UpdateAppointment: update failed for appointment=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: update failed: %v", ErrInternal, err)
	}

	// 5. Побочные эффекты после фиксации; ошибки не откатывают обновление
	uc.applyNotificationEffects(ctx, req, current, target)

	// 6. Ответ с данными клиента, мастера и услуги
	details, err := uc.appointmentRepo.GetDetailsByID(ctx, req.ID)
	if err != nil {
		uc.logger.Error("UpdateAppointment: failed to load details for appointment=%s: %v", req.ID, err)
		return nil, fmt.Errorf("%w: failed to load details: %v", ErrInternal, err)
	}

	uc.logger.Info("UpdateAppointment: appointment=%s updated to status=%s", req.ID, details.Status)
	return FromDetails(details), nil
}

// targetState итоговые значения записи после применения запроса
type targetState struct {
	manicuristID string
	startAt      time.Time
	endAt        time.Time
	status       domain.AppointmentStatus
	rescheduled  bool
}

// resolveTarget вычисляет итоговое состояние и поля для частичного обновления.
// Смена услуги пересчитывает длительность и фиксирует новую цену
func (uc *UseCase) resolveTarget(ctx context.Context, current *domain.Appointment, req *Request) (*targetState, appointmentRepo.UpdateFields, error) {
	target := &targetState{
		manicuristID: current.ManicuristID,
		startAt:      current.StartAt,
		endAt:        current.EndAt,
		status:       current.Status,
	}
	fields := appointmentRepo.UpdateFields{Notes: req.Notes}

	duration := current.EndAt.Sub(current.StartAt)

	if req.ServiceID != nil && *req.ServiceID != current.ServiceID {
		service, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("UpdateAppointment: service=%s not found", *req.ServiceID)
				return nil, fields, ErrServiceNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get service=%s: %v", *req.ServiceID, err)
			return nil, fields, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !service.IsActive {
			return nil, fields, ErrServiceNotFound
		}

		duration = time.Duration(service.DurationMinutes) * time.Minute
		fields.ServiceID = req.ServiceID
		fields.Price = ptr.Ptr(service.Price.StringFixed(2))
		target.rescheduled = true
	}

	if req.ManicuristID != nil && *req.ManicuristID != current.ManicuristID {
		if _, err := uc.manicuristRepo.GetByID(ctx, *req.ManicuristID); err != nil {
			if errors.Is(err, manicuristRepo.ErrManicuristNotFound) {
				uc.logger.Warn("UpdateAppointment: manicurist=%s not found", *req.ManicuristID)
				return nil, fields, ErrManicuristNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get manicurist=%s: %v", *req.ManicuristID, err)
			return nil, fields, fmt.Errorf("%w: failed to get manicurist: %v", ErrInternal, err)
		}
		target.manicuristID = *req.ManicuristID
		fields.ManicuristID = req.ManicuristID
		target.rescheduled = true
	}

	if req.StartAt != nil && !req.StartAt.Equal(current.StartAt) {
		target.startAt = *req.StartAt
		target.rescheduled = true
	}

	if target.rescheduled {
		target.endAt = target.startAt.Add(duration)
		fields.StartAt = ptr.Ptr(target.startAt)
		fields.EndAt = ptr.Ptr(target.endAt)
	}

	if req.Status != nil {
		status, _ := domain.ParseAppointmentStatus(*req.Status)
		target.status = status
		fields.Status = ptr.Ptr(status)
	}

	return target, fields, nil
}

// applyNotificationEffects ставит уведомления по итогам обновления
func (uc *UseCase) applyNotificationEffects(ctx context.Context, req *Request, current *domain.Appointment, target *targetState) {
	if target.status == domain.StatusCancelled && current.Status != domain.StatusCancelled {
		if err := uc.reminders.EnqueueCancellation(ctx, req.ID); err != nil {
			uc.logger.Error("UpdateAppointment: failed to enqueue cancellation for appointment=%s: %v", req.ID, err)
		}
		return
	}

	if target.rescheduled {
		if err := uc.reminders.ScheduleReminder(ctx, req.ID, target.startAt); err != nil {
			uc.logger.Error("UpdateAppointment: failed to reschedule reminder for appointment=%s: %v", req.ID, err)
		}
	}
}

// translateTxError переводит ошибки транзакции в ошибки use case
func (uc *UseCase) translateTxError(req *Request, txErr error) error {
	switch {
	case errors.Is(txErr, ErrSlotNotAvailable), errors.Is(txErr, ErrClientConflict):
		uc.logger.Warn("UpdateAppointment: conflict for appointment=%s: %v", req.ID, txErr)
		return txErr
	case isSlotRaceError(txErr):
		uc.logger.Warn("UpdateAppointment: lost slot race for appointment=%s: %v", req.ID, txErr)
		return ErrSlotNotAvailable
	}
	uc.logger.Error("UpdateAppointment: transaction failed for appointment=%s: %v", req.ID, txErr)
	return fmt.Errorf("%w: transaction failed: %v", ErrInternal, txErr)
}

// isSlotRaceError распознает ошибки PostgreSQL, означающие, что параллельная
// транзакция успела занять слот первой
func isSlotRaceError(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch string(pqErr.Code) {
	case pgSerializationFailure, pgUniqueViolation, pgExclusionViolation:
		return true
	}
	return false
}
