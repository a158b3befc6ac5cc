package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ErrInternal внутренняя ошибка сервиса
var ErrInternal = errors.New("service/dashboard: internal error")

// Service аналитика салона: сводка дня и выработка мастеров
type Service struct {
	appointmentRepo AppointmentRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(
	appointmentRepo AppointmentRepository,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetStats возвращает сводку за сегодня и выручку за период [from, to].
// Пустой период по умолчанию - последние 30 дней
func (s *Service) GetStats(ctx context.Context, businessID string, from, to *time.Time) (*domain.DashboardStats, error) {
	now := s.timeProvider.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)

	rangeFrom := dayStart.AddDate(0, 0, -30)
	rangeTo := dayEnd
	if from != nil {
		rangeFrom = *from
	}
	if to != nil {
		rangeTo = *to
	}

	counts, err := s.appointmentRepo.CountByStatusBetween(ctx, businessID, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("GetStats: counts error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetStats - counts error: %v", ErrInternal, err)
	}

	revenueToday, err := s.appointmentRepo.SumCompletedRevenueBetween(ctx, businessID, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("GetStats: today revenue error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetStats - today revenue error: %v", ErrInternal, err)
	}

	revenueRange, err := s.appointmentRepo.SumCompletedRevenueBetween(ctx, businessID, rangeFrom, rangeTo)
	if err != nil {
		s.logger.Error("GetStats: range revenue error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetStats - range revenue error: %v", ErrInternal, err)
	}

	stats := &domain.DashboardStats{
		Date:           dayStart,
		PendingToday:   counts[domain.StatusPending],
		ConfirmedToday: counts[domain.StatusConfirmed],
		CancelledToday: counts[domain.StatusCancelled],
		CompletedToday: counts[domain.StatusCompleted],
		RevenueToday:   revenueToday,
		RevenueRange:   revenueRange,
		RangeFrom:      rangeFrom,
		RangeTo:        rangeTo,
	}
	for _, c := range counts {
		stats.TotalToday += c
	}

	return stats, nil
}

// GetProductivity возвращает выработку мастеров за период [from, to].
// Пустой период по умолчанию - текущий день
func (s *Service) GetProductivity(ctx context.Context, businessID string, from, to *time.Time) ([]*domain.ManicuristProductivity, error) {
	now := s.timeProvider.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	rangeFrom := dayStart
	rangeTo := dayStart.Add(24*time.Hour - time.Millisecond)
	if from != nil {
		rangeFrom = *from
	}
	if to != nil {
		rangeTo = *to
	}

	result, err := s.appointmentRepo.ProductivityBetween(ctx, businessID, rangeFrom, rangeTo)
	if err != nil {
		s.logger.Error("GetProductivity: repository error for business=%s: %v", businessID, err)
		return nil, fmt.Errorf("%w: GetProductivity - repository error: %v", ErrInternal, err)
	}

	return result, nil
}
