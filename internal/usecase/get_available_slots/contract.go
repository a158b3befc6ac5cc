package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ManicuristRepository интерфейс репозитория мастеров
type ManicuristRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Manicurist, error)
	GetScheduleForDay(ctx context.Context, manicuristID string, dayOfWeek int) (*domain.Schedule, error)
	ListBlockedBetween(ctx context.Context, manicuristID string, from, to time.Time) ([]*domain.BlockedTime, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListActiveByManicuristBetween(ctx context.Context, manicuristID string, from, to time.Time) ([]*domain.Appointment, error)
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
