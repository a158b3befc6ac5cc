package get_available_slots

import "time"

// Request запрос свободных слотов мастера на дату
type Request struct {
	ManicuristID    string
	Date            time.Time
	DurationMinutes int
}

// Slot свободный интервал для записи
type Slot struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

// Response список свободных слотов, отсортированных по времени начала
type Response struct {
	ManicuristID string    `json:"manicuristId"`
	Date         time.Time `json:"date"`
	Slots        []Slot    `json:"slots"`
}
