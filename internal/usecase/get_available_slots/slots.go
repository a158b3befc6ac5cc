package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// generateSlots обходит рабочее окно с шагом сетки и возвращает интервалы
// длительностью duration, не пересекающие занятые интервалы.
// Кандидат, конец которого выходит за окно, останавливает обход.
// Слоты, начинающиеся до minStart, пропускаются
func generateSlots(band domain.TimeRange, busy []domain.TimeRange, duration time.Duration, minStart time.Time) []Slot {
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
		if overlapsAny(candidate, busy) {
			continue
		}

		slots = append(slots, Slot{StartAt: cursor, EndAt: candidateEnd})
	}

	return slots
}

// overlapsAny проверяет пересечение кандидата хотя бы с одним занятым интервалом
func overlapsAny(candidate domain.TimeRange, busy []domain.TimeRange) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}

// collectBusy собирает занятые интервалы дня: активные записи и блокировки мастера
func collectBusy(appointments []*domain.Appointment, blocked []*domain.BlockedTime) []domain.TimeRange {
	busy := make([]domain.TimeRange, 0, len(appointments)+len(blocked))
	for _, a := range appointments {
		busy = append(busy, a.Range())
	}
	for _, b := range blocked {
		busy = append(busy, b.Range())
	}
	return busy
}
