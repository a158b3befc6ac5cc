package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetDetailsByID(ctx context.Context, id string) (*domain.AppointmentDetails, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
}

// ManicuristRepository интерфейс репозитория мастеров
type ManicuristRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Manicurist, error)
}

// AvailabilityService интерфейс проверки доступности слота
type AvailabilityService interface {
	IsSlotAvailable(ctx context.Context, manicuristID string, start, end time.Time, excludeID *string) (bool, error)
	ClientOverlappingAppointment(ctx context.Context, clientID string, start, end time.Time, excludeID *string) (*domain.Appointment, error)
}

// RemindersService интерфейс планировщика уведомлений
type RemindersService interface {
	EnqueueConfirmation(ctx context.Context, appointmentID string) error
	ScheduleReminder(ctx context.Context, appointmentID string, startAt time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
