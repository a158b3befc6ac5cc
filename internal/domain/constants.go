package domain

import "time"

// Slot grid constants
const (
	// SlotStepMinutes шаг сетки слотов: кандидаты генерируются каждые 15 минут
	SlotStepMinutes = 15

	// NextSlotsSearchDays горизонт поиска ближайших свободных слотов
	NextSlotsSearchDays = 14

	// DefaultNextSlotsLimit лимит ближайших слотов по умолчанию
	DefaultNextSlotsLimit = 10
)

// Reminder policy constants
const (
	// ReminderLeadLong за сколько напоминать, если до записи больше суток
	ReminderLeadLong = 24 * time.Hour

	// ReminderLeadShort за сколько напоминать, если до записи меньше суток
	ReminderLeadShort = time.Hour
)

// Business validation constants
const (
	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxNotesLength            = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
