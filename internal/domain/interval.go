package domain

import "time"

// TimeRange полуоткрытый интервал [Start, End)
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// Интервалы пересекаются, только если start1 < end2 И start2 < end1:
// граничащие интервалы (конец одного == начало другого) НЕ пересекаются
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Contains проверяет, что интервал other целиком лежит внутри r
func (r TimeRange) Contains(other TimeRange) bool {
	return !other.Start.Before(r.Start) && !other.End.After(r.End)
}

// IsValid проверяет, что конец строго позже начала
func (r TimeRange) IsValid() bool {
	return r.End.After(r.Start)
}

// Slot свободный интервал длиной ровно в длительность услуги,
// выровненный по 15-минутной сетке
type Slot struct {
	Start time.Time
	End   time.Time
}

// ManicuristSlot слот с привязкой к мастеру (для поиска ближайших свободных слотов)
type ManicuristSlot struct {
	Slot
	ManicuristID string
}
