package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
	GetDetailsByID(ctx context.Context, id string) (*domain.AppointmentDetails, error)
	Update(ctx context.Context, id string, fields appointment.UpdateFields) (*domain.Appointment, error)
	ListDetailsByRange(ctx context.Context, from, to time.Time, filter domain.AppointmentsFilter) ([]*domain.AppointmentDetails, error)
	AutoCompleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// RemindersService интерфейс планировщика уведомлений
type RemindersService interface {
	EnqueueCancellation(ctx context.Context, appointmentID string) error
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
