package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Manicurist represents a staff member of a business
// Деактивируется (не удаляется), если у мастера есть исторические записи
type Manicurist struct {
	ID         string
	BusinessID string
	Name       string
	Color      string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Schedule недельное расписание мастера: не более одной строки на день недели
// Времена - wall-clock HH:MM; при активной строке StartTime < EndTime
type Schedule struct {
	ID           string
	ManicuristID string
	DayOfWeek    int // 0 = воскресенье ... 6 = суббота
	StartTime    types.TimeString
	EndTime      types.TimeString
	IsActive     bool
}

// IsValid проверяет инварианты строки расписания
func (s *Schedule) IsValid() bool {
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return false
	}
	if !s.IsActive {
		return true
	}
	if s.StartTime.Validate() != nil || s.EndTime.Validate() != nil {
		return false
	}
	return s.StartTime.IsBefore(s.EndTime)
}

// Band возвращает абсолютный интервал рабочего окна на указанную дату
func (s *Schedule) Band(date time.Time) (TimeRange, error) {
	start, err := s.StartTime.OnDate(date)
	if err != nil {
		return TimeRange{}, err
	}
	end, err := s.EndTime.OnDate(date)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start, End: end}, nil
}

// BlockedTime разовый интервал недоступности мастера (отпуск, перерыв)
// Перекрывает недельное расписание
type BlockedTime struct {
	ID           string
	ManicuristID string
	StartAt      time.Time
	EndAt        time.Time
	Reason       *string
	CreatedAt    time.Time
}

// Range возвращает интервал блокировки
func (b *BlockedTime) Range() TimeRange {
	return TimeRange{Start: b.StartAt, End: b.EndAt}
}
