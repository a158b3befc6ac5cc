package get_next_available_slots

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	manicuristRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/manicurist"
)

// UseCase use case поиска ближайших свободных слотов по нескольким мастерам
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

// Execute выполняет use case поиска ближайших слотов.
// Поиск идет день за днем от текущего момента, горизонт ограничен
// domain.NextSlotsSearchDays. Результат отсортирован по времени начала
// по всем мастерам сразу и обрезан до limit
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.DurationMinutes < domain.MinServiceDurationMinutes || req.DurationMinutes > domain.MaxServiceDurationMinutes {
		uc.logger.Warn("GetNextAvailableSlots: invalid duration=%d", req.DurationMinutes)
		return nil, fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidDuration, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = domain.DefaultNextSlotsLimit
	}

	// 2. Определяем список мастеров
	manicuristIDs, err := uc.resolveManicurists(ctx, req)
	if err != nil {
		return nil, err
	}

	// 3. Точка отсчета: текущий момент, округленный вверх до шага сетки
	now := uc.timeProvider.Now()
	searchStart := roundUpToStep(now)
	duration := time.Duration(req.DurationMinutes) * time.Minute

	// 4. Обходим дни горизонта; слоты следующего дня всегда позже слотов
	// текущего, поэтому обход можно прервать, как только слотов достаточно
	collected := make([]Slot, 0, limit)
	for day := 0; day < domain.NextSlotsSearchDays && len(collected) < limit; day++ {
		date := searchStart.AddDate(0, 0, day)

		daySlots := make([]Slot, 0)
		for _, id := range manicuristIDs {
			slots, err := uc.slotsForDay(ctx, id, date, duration, searchStart)
			if err != nil {
				return nil, err
			}
			daySlots = append(daySlots, slots...)
		}

		sort.Slice(daySlots, func(i, j int) bool {
			if daySlots[i].StartAt.Equal(daySlots[j].StartAt) {
				return daySlots[i].ManicuristID < daySlots[j].ManicuristID
			}
			return daySlots[i].StartAt.Before(daySlots[j].StartAt)
		})
		collected = append(collected, daySlots...)
	}

	if len(collected) > limit {
		collected = collected[:limit]
	}

	uc.logger.Info("GetNextAvailableSlots: found %d slots across %d manicurists", len(collected), len(manicuristIDs))
	return &Response{Slots: collected}, nil
}

// resolveManicurists возвращает список мастеров для поиска:
// явно указанные либо все активные мастера салона
func (uc *UseCase) resolveManicurists(ctx context.Context, req *Request) ([]string, error) {
	if len(req.ManicuristIDs) > 0 {
		for _, id := range req.ManicuristIDs {
			if _, err := uc.manicuristRepo.GetByID(ctx, id); err != nil {
				if errors.Is(err, manicuristRepo.ErrManicuristNotFound) {
					uc.logger.Warn("GetNextAvailableSlots: manicurist=%s not found", id)
					return nil, ErrManicuristNotFound
				}
				uc.logger.Error("GetNextAvailableSlots: failed to get manicurist=%s: %v", id, err)
				return nil, fmt.Errorf("%w: failed to get manicurist: %v", ErrInternal, err)
			}
		}
		return req.ManicuristIDs, nil
	}

	active, err := uc.manicuristRepo.ListActive(ctx, req.BusinessID)
	if err != nil {
		uc.logger.Error("GetNextAvailableSlots: failed to list manicurists: %v", err)
		return nil, fmt.Errorf("%w: failed to list manicurists: %v", ErrInternal, err)
	}

	ids := make([]string, 0, len(active))
	for _, m := range active {
		ids = append(ids, m.ID)
	}
	return ids, nil
}

// slotsForDay возвращает свободные слоты мастера на дату
func (uc *UseCase) slotsForDay(ctx context.Context, manicuristID string, date time.Time, duration time.Duration, minStart time.Time) ([]Slot, error) {
	schedule, err := uc.manicuristRepo.GetScheduleForDay(ctx, manicuristID, int(date.Weekday()))
	if err != nil {
		uc.logger.Error("GetNextAvailableSlots: failed to get schedule for manicurist=%s: %v", manicuristID, err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}
	if schedule == nil || !schedule.IsActive {
		return nil, nil
	}

	band, err := schedule.Band(date)
	if err != nil {
		uc.logger.Error("GetNextAvailableSlots: invalid schedule band for manicurist=%s: %v", manicuristID, err)
		return nil, fmt.Errorf("%w: invalid schedule band: %v", ErrInternal, err)
	}
	if !band.End.After(minStart) {
		return nil, nil
	}

	appointments, err := uc.appointmentRepo.ListActiveByManicuristBetween(ctx, manicuristID, band.Start, band.End)
	if err != nil {
		uc.logger.Error("GetNextAvailableSlots: failed to list appointments for manicurist=%s: %v", manicuristID, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	blocked, err := uc.manicuristRepo.ListBlockedBetween(ctx, manicuristID, band.Start, band.End)
	if err != nil {
		uc.logger.Error("GetNextAvailableSlots: failed to list blocked times for manicurist=%s: %v", manicuristID, err)
		return nil, fmt.Errorf("%w: failed to list blocked times: %v", ErrInternal, err)
	}

	busy := make([]domain.TimeRange, 0, len(appointments)+len(blocked))
	for _, a := range appointments {
		busy = append(busy, a.Range())
	}
	for _, b := range blocked {
		busy = append(busy, b.Range())
	}

	step := time.Duration(domain.SlotStepMinutes) * time.Minute
	slots := make([]Slot, 0)
	for cursor := band.Start; ; cursor = cursor.Add(step) {
		candidateEnd := cursor.Add(duration)
		if candidateEnd.After(band.End) {
			break
		}
		if cursor.Before(minStart) {
			continue
		}

		candidate := domain.TimeRange{Start: cursor, End: candidateEnd}
		free := true
		for _, b := range busy {
			if candidate.Overlaps(b) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, Slot{ManicuristID: manicuristID, StartAt: cursor, EndAt: candidateEnd})
		}
	}

	return slots, nil
}

// roundUpToStep округляет время вверх до ближайшей границы сетки слотов
func roundUpToStep(t time.Time) time.Time {
	step := time.Duration(domain.SlotStepMinutes) * time.Minute
	rounded := t.Truncate(step)
	if rounded.Before(t) {
		rounded = rounded.Add(step)
	}
	return rounded
}
