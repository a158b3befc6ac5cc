package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	manicuristRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/manicurist"
)

// UseCase use case получения свободных слотов мастера на дату
type UseCase struct {
	manicuristRepo  ManicuristRepository
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	manicuristRepo ManicuristRepository,
	appointmentRepo AppointmentRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		manicuristRepo:  manicuristRepo,
		appointmentRepo: appointmentRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: manicurist=%s, date=%s, duration=%d",
		req.ManicuristID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	response := &Response{
		ManicuristID: req.ManicuristID,
		Date:         req.Date,
		Slots:        []Slot{},
	}

	// 2. Проверяем существование мастера
	if _, err := uc.manicuristRepo.GetByID(ctx, req.ManicuristID); err != nil {
		if errors.Is(err, manicuristRepo.ErrManicuristNotFound) {
			uc.logger.Warn("GetAvailableSlots: manicurist=%s not found", req.ManicuristID)
			return nil, ErrManicuristNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get manicurist=%s: %v", req.ManicuristID, err)
		return nil, fmt.Errorf("%w: failed to get manicurist: %v", ErrInternal, err)
	}

	// 3. Рабочее окно на день недели; выходной или неактивный график - пустой ответ
	schedule, err := uc.manicuristRepo.GetScheduleForDay(ctx, req.ManicuristID, int(req.Date.Weekday()))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get schedule for manicurist=%s: %v", req.ManicuristID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	if schedule == nil || !schedule.IsActive {
		uc.logger.Info("GetAvailableSlots: manicurist=%s does not work on %s", req.ManicuristID, req.Date.Format(domain.DateFormat))
		return response, nil
	}

	band, err := schedule.Band(req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: invalid schedule band for manicurist=%s: %v", req.ManicuristID, err)
		return nil, fmt.Errorf("%w: invalid schedule band: %v", ErrInternal, err)
	}

	// 4. Занятость дня: активные записи и блокировки
	appointments, err := uc.appointmentRepo.ListActiveByManicuristBetween(ctx, req.ManicuristID, band.Start, band.End)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list appointments for manicurist=%s: %v", req.ManicuristID, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	blocked, err := uc.manicuristRepo.ListBlockedBetween(ctx, req.ManicuristID, band.Start, band.End)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list blocked times for manicurist=%s: %v", req.ManicuristID, err)
		return nil, fmt.Errorf("%w: failed to list blocked times: %v", ErrInternal, err)
	}

	// 5. Для сегодняшней даты прошедшие слоты не предлагаются
	now := uc.timeProvider.Now()
	minStart := band.Start
	if sameDay(req.Date, now) && now.After(minStart) {
		minStart = now
	}

	// 6. Обход сетки рабочего окна
	duration := time.Duration(req.DurationMinutes) * time.Minute
	response.Slots = generateSlots(band, collectBusy(appointments, blocked), duration, minStart)

	uc.logger.Info("GetAvailableSlots: manicurist=%s has %d free slots on %s",
		req.ManicuristID, len(response.Slots), req.Date.Format(domain.DateFormat))
	return response, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
