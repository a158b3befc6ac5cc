package reminders

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// JobQueue интерфейс очереди отложенных заданий
type JobQueue interface {
	Enqueue(ctx context.Context, jobID, appointmentID string, ntype domain.NotificationType, runAt time.Time) (*domain.NotificationJob, error)
	Remove(ctx context.Context, jobID string) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListNeedingReminder(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
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
