package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "PENDING"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusCompleted AppointmentStatus = "COMPLETED"
)

// Appointment represents a booked service slot in the system
type Appointment struct {
	ID           string
	BusinessID   string
	ClientID     string
	ManicuristID string
	ServiceID    string

	StartAt time.Time
	EndAt   time.Time

	// Цена фиксируется из услуги в момент создания: последующие изменения
	// прайса не влияют на историческую выручку
	Price  decimal.Decimal
	Status AppointmentStatus
	Notes  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its slot
func (a *Appointment) IsActive() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsTerminal returns true if no further edits may change time/staff/service
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCancelled || a.Status == StatusCompleted
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// Range returns the occupied [StartAt, EndAt) interval
func (a *Appointment) Range() TimeRange {
	return TimeRange{Start: a.StartAt, End: a.EndAt}
}

// ActiveStatuses статусы записей, занимающих слот
// Используются во всех проверках пересечений и в генерации слотов
var ActiveStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
}

// ValidStatuses все допустимые статусы записи
var ValidStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// ParseAppointmentStatus валидирует строковый статус
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	for _, status := range ValidStatuses {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}

// AppointmentsFilter фильтр для выборок записей
type AppointmentsFilter struct {
	BusinessID   *string // Фильтр по салону (опционально)
	ManicuristID *string // Фильтр по мастеру (опционально)
}

// AppointmentDetails запись вместе с данными клиента, мастера и услуги
// Используется в ответах API и при рендеринге уведомлений
type AppointmentDetails struct {
	Appointment
	Client     ClientSummary
	Manicurist ManicuristSummary
	Service    ServiceSummary
}

// ClientSummary краткие данные клиента для joined-выборок
type ClientSummary struct {
	ID    string
	Name  string
	Phone string
	Email *string
}

// ManicuristSummary краткие данные мастера для joined-выборок
type ManicuristSummary struct {
	ID    string
	Name  string
	Color string
}

// ServiceSummary краткие данные услуги для joined-выборок
type ServiceSummary struct {
	ID              string
	Name            string
	DurationMinutes int
	Color           string
}
