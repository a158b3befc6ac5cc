package update_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	Update(ctx context.Context, id string, fields appointment.UpdateFields) (*domain.Appointment, error)
	GetDetailsByID(ctx context.Context, id string) (*domain.AppointmentDetails, error)
}

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
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
	ScheduleReminder(ctx context.Context, appointmentID string, startAt time.Time) error
	EnqueueCancellation(ctx context.Context, appointmentID string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
