package manicurists

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	manicuristRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/manicurist"
)

// Service сервис для работы с мастерами: список, график, блокировки
type Service struct {
	manicuristRepo ManicuristRepository
	txManager      TransactionManager
	logger         Logger
}

// NewService создает новый экземпляр сервиса мастеров
func NewService(
	manicuristRepo ManicuristRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		manicuristRepo: manicuristRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// List возвращает активных мастеров, опционально в рамках салона
func (s *Service) List(ctx context.Context, businessID *string) ([]*domain.Manicurist, error) {
	list, err := s.manicuristRepo.ListActive(ctx, businessID)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// GetWithSchedule возвращает мастера вместе с недельным графиком
func (s *Service) GetWithSchedule(ctx context.Context, id string) (*domain.Manicurist, []*domain.Schedule, error) {
	m, err := s.manicuristRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, manicuristRepo.ErrManicuristNotFound) {
			return nil, nil, ErrManicuristNotFound
		}
		s.logger.Error("GetWithSchedule: repository error for manicurist=%s: %v", id, err)
		return nil, nil, fmt.Errorf("%w: GetWithSchedule - repository error: %v", ErrInternal, err)
	}

	schedules, err := s.manicuristRepo.ListSchedules(ctx, id)
	if err != nil {
		s.logger.Error("GetWithSchedule: schedules error for manicurist=%s: %v", id, err)
		return nil, nil, fmt.Errorf("%w: GetWithSchedule - schedules error: %v", ErrInternal, err)
	}

	return m, schedules, nil
}

// UpdateWeeklySchedule заменяет недельный график целиком: ровно 7 дней,
// по одной строке на день недели, в одной транзакции
func (s *Service) UpdateWeeklySchedule(ctx context.Context, manicuristID string, schedules []domain.Schedule) error {
	if len(schedules) != 7 {
		return fmt.Errorf("%w: expected 7 days, got %d", ErrInvalidSchedule, len(schedules))
	}

	seen := [7]bool{}
	for i := range schedules {
		sc := &schedules[i]
		if !sc.IsValid() {
			return fmt.Errorf("%w: day %d has invalid time range", ErrInvalidSchedule, sc.DayOfWeek)
		}
		if seen[sc.DayOfWeek] {
			return fmt.Errorf("%w: duplicate day %d", ErrInvalidSchedule, sc.DayOfWeek)
		}
		seen[sc.DayOfWeek] = true
		sc.ManicuristID = manicuristID
	}

	if _, err := s.manicuristRepo.GetByID(ctx, manicuristID); err != nil {
		if errors.Is(err, manicuristRepo.ErrManicuristNotFound) {
			return ErrManicuristNotFound
		}
		s.logger.Error("UpdateWeeklySchedule: repository error for manicurist=%s: %v", manicuristID, err)
		return fmt.Errorf("%w: UpdateWeeklySchedule - repository error: %v", ErrInternal, err)
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.manicuristRepo.ReplaceWeeklySchedule(ctx, manicuristID, schedules)
	})
	if err != nil {
		s.logger.Error("UpdateWeeklySchedule: transaction error for manicurist=%s: %v", manicuristID, err)
		return fmt.Errorf("%w: UpdateWeeklySchedule - transaction error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeeklySchedule: schedule replaced for manicurist=%s", manicuristID)
	return nil
}

// CreateBlockedTime блокирует интервал у мастера (отпуск, перерыв)
func (s *Service) CreateBlockedTime(ctx context.Context, manicuristID string, startAt, endAt time.Time, reason *string) (*domain.BlockedTime, error) {
	if !startAt.Before(endAt) {
		return nil, fmt.Errorf("%w: start must be before end", ErrInvalidBlockedTime)
	}

	if _, err := s.manicuristRepo.GetByID(ctx, manicuristID); err != nil {
		if errors.Is(err, manicuristRepo.ErrManicuristNotFound) {
			return nil, ErrManicuristNotFound
		}
		s.logger.Error("CreateBlockedTime: repository error for manicurist=%s: %v", manicuristID, err)
		return nil, fmt.Errorf("%w: CreateBlockedTime - repository error: %v", ErrInternal, err)
	}

	created, err := s.manicuristRepo.CreateBlockedTime(ctx, &domain.BlockedTime{
		ManicuristID: manicuristID,
		StartAt:      startAt,
		EndAt:        endAt,
		Reason:       reason,
	})
	if err != nil {
		s.logger.Error("CreateBlockedTime: repository error for manicurist=%s: %v", manicuristID, err)
		return nil, fmt.Errorf("%w: CreateBlockedTime - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlockedTime: blocked %s..%s for manicurist=%s", startAt.Format(time.RFC3339), endAt.Format(time.RFC3339), manicuristID)
	return created, nil
}

// DeleteBlockedTime снимает блокировку
func (s *Service) DeleteBlockedTime(ctx context.Context, id string) error {
	if err := s.manicuristRepo.DeleteBlockedTime(ctx, id); err != nil {
		if errors.Is(err, manicuristRepo.ErrBlockedTimeNotFound) {
			return ErrBlockedTimeNotFound
		}
		s.logger.Error("DeleteBlockedTime: repository error for blocked_time=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteBlockedTime - repository error: %v", ErrInternal, err)
	}
	return nil
}
