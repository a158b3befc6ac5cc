package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Service проверяет доступность интервала у мастера и пересечения записей клиента
type Service struct {
	appointmentRepo AppointmentRepository
	manicuristRepo  ManicuristRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	appointmentRepo AppointmentRepository,
	manicuristRepo ManicuristRepository,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		manicuristRepo:  manicuristRepo,
		logger:          logger,
	}
}

// IsSlotAvailable проверяет, свободен ли интервал [start, end) у мастера.
// Проверки идут последовательно: график работы, блокировки, пересечения записей.
// excludeID исключает собственную запись при переносе
func (s *Service) IsSlotAvailable(ctx context.Context, manicuristID string, start, end time.Time, excludeID *string) (bool, error) {
	// 1. Интервал должен целиком попадать в рабочий график дня
	schedule, err := s.manicuristRepo.GetScheduleForDay(ctx, manicuristID, int(start.Weekday()))
	if err != nil {
		s.logger.Error("IsSlotAvailable: schedule lookup for manicurist=%s: %v", manicuristID, err)
		return false, fmt.Errorf("%w: IsSlotAvailable - schedule lookup: %v", ErrInternal, err)
	}
	if schedule == nil || !schedule.IsActive {
		return false, nil
	}
	band, err := schedule.Band(start)
	if err != nil {
		s.logger.Error("IsSlotAvailable: invalid schedule band for manicurist=%s: %v", manicuristID, err)
		return false, fmt.Errorf("%w: IsSlotAvailable - schedule band: %v", ErrInternal, err)
	}
	if !band.Contains(domain.TimeRange{Start: start, End: end}) {
		return false, nil
	}

	// 2. Интервал не должен пересекаться с блокировками мастера
	blocked, err := s.manicuristRepo.FindBlockedOverlap(ctx, manicuristID, start, end)
	if err != nil {
		s.logger.Error("IsSlotAvailable: blocked time lookup for manicurist=%s: %v", manicuristID, err)
		return false, fmt.Errorf("%w: IsSlotAvailable - blocked time lookup: %v", ErrInternal, err)
	}
	if blocked != nil {
		return false, nil
	}

	// 3. Интервал не должен пересекаться с активными записями мастера
	overlap, err := s.appointmentRepo.FindOverlapForManicurist(ctx, manicuristID, start, end, excludeID)
	if err != nil {
		s.logger.Error("IsSlotAvailable: appointment overlap lookup for manicurist=%s: %v", manicuristID, err)
		return false, fmt.Errorf("%w: IsSlotAvailable - appointment overlap lookup: %v", ErrInternal, err)
	}
	if overlap != nil {
		return false, nil
	}

	return true, nil
}

// ClientOverlappingAppointment возвращает активную запись клиента, пересекающуюся
// с интервалом [start, end), либо nil если пересечений нет
func (s *Service) ClientOverlappingAppointment(ctx context.Context, clientID string, start, end time.Time, excludeID *string) (*domain.Appointment, error) {
	overlap, err := s.appointmentRepo.FindOverlapForClient(ctx, clientID, start, end, excludeID)
	if err != nil {
		s.logger.Error("ClientOverlappingAppointment: overlap lookup for client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: ClientOverlappingAppointment - overlap lookup: %v", ErrInternal, err)
	}
	return overlap, nil
}
