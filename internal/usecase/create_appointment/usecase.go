package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	clientRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/client"
	manicuristRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/manicurist"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
)

// Коды ошибок PostgreSQL, означающие проигрыш гонки за слот
const (
	pgSerializationFailure = "40001"
	pgUniqueViolation      = "23505"
	pgExclusionViolation   = "23P01"
)

// UseCase use case создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	clientRepo      ClientRepository
	manicuristRepo  ManicuristRepository
	availability    AvailabilityService
	reminders       RemindersService
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	clientRepo ClientRepository,
	manicuristRepo ManicuristRepository,
	availability AvailabilityService,
	reminders RemindersService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		clientRepo:      clientRepo,
		manicuristRepo:  manicuristRepo,
		availability:    availability,
		reminders:       reminders,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверки доступности и вставка идут в одной serializable-транзакции
// с блокировкой пересекающихся строк, поэтому две параллельные попытки
// занять один слот не могут пройти обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: client=%s, manicurist=%s, service=%s, start=%s",
		req.ClientID, req.ManicuristID, req.ServiceID, req.StartAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга: длительность и цена фиксируются на момент создания
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service=%s is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	endAt := req.StartAt.Add(time.Duration(service.DurationMinutes) * time.Minute)

	// 3. Клиент и мастер должны существовать
	if _, err := uc.clientRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}
	if _, err := uc.manicuristRepo.GetByID(ctx, req.ManicuristID); err != nil {
		if errors.Is(err, manicuristRepo.ErrManicuristNotFound) {
			uc.logger.Warn("CreateAppointment: manicurist=%s not found", req.ManicuristID)
			return nil, ErrManicuristNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get manicurist=%s: %v", req.ManicuristID, err)
		return nil, fmt.Errorf("%w: failed to get manicurist: %v", ErrInternal, err)
	}

	// 4. Проверки доступности и вставка в одной транзакции
	var created *domain.Appointment
	txErr := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		available, err := uc.availability.IsSlotAvailable(ctx, req.ManicuristID, req.StartAt, endAt, nil)
		if err != nil {
			return err
		}
		if !available {
			return ErrSlotNotAvailable
		}

		conflict, err := uc.availability.ClientOverlappingAppointment(ctx, req.ClientID, req.StartAt, endAt, nil)
		if err != nil {
			return err
		}
		if conflict != nil {
			return fmt.Errorf("%w: from %s to %s", ErrClientConflict,
				conflict.StartAt.Format(time.RFC3339), conflict.EndAt.Format(time.RFC3339))
		}

		created, err = uc.appointmentRepo.Create(ctx, &domain.Appointment{
			BusinessID:   req.BusinessID,
			ClientID:     req.ClientID,
			ManicuristID: req.ManicuristID,
			ServiceID:    req.ServiceID,
			StartAt:      req.StartAt,
			EndAt:        endAt,
			Price:        service.Price,
			Status:       domain.StatusPending,
			Notes:        req.Notes,
		})
		return err
	})
	if txErr != nil {
		switch {
		case errors.Is(txErr, ErrSlotNotAvailable), errors.Is(txErr, ErrClientConflict):
			uc.logger.Warn("CreateAppointment: conflict for manicurist=%s start=%s: %v",
				req.ManicuristID, req.StartAt.Format(time.RFC3339), txErr)
			return nil, txErr
		case isSlotRaceError(txErr):
			uc.logger.Warn("CreateAppointment: lost slot race for manicurist=%s start=%s: %v",
				req.ManicuristID, req.StartAt.Format(time.RFC3339), txErr)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateAppointment: transaction failed: %v", txErr)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, txErr)
	}

	// 5. Уведомления ставятся после фиксации транзакции.
	// Ошибка постановки не отменяет созданную запись
	if err := uc.reminders.EnqueueConfirmation(ctx, created.ID); err != nil {
		uc.logger.Error("CreateAppointment: failed to enqueue confirmation for appointment=%s: %v", created.ID, err)
	}
	if err := uc.reminders.ScheduleReminder(ctx, created.ID, created.StartAt); err != nil {
		uc.logger.Error("CreateAppointment: failed to schedule reminder for appointment=%s: %v", created.ID, err)
	}

	// 6. Ответ с данными клиента, мастера и услуги
	details, err := uc.appointmentRepo.GetDetailsByID(ctx, created.ID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load details for appointment=%s: %v", created.ID, err)
		return nil, fmt.Errorf("%w: failed to load details: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateAppointment: appointment=%s created for client=%s", created.ID, req.ClientID)
	return FromDetails(details), nil
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
