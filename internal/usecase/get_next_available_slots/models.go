package get_next_available_slots

import "time"

// Request запрос ближайших свободных слотов
// Пустой список мастеров означает всех активных мастеров салона
type Request struct {
	BusinessID      *string
	ManicuristIDs   []string
	DurationMinutes int
	Limit           int
}

// Slot свободный интервал у конкретного мастера
type Slot struct {
	ManicuristID string    `json:"manicuristId"`
	StartAt      time.Time `json:"startAt"`
	EndAt        time.Time `json:"endAt"`
}

// Response ближайшие слоты всех мастеров, отсортированные по времени начала
type Response struct {
	Slots []Slot `json:"slots"`
}
