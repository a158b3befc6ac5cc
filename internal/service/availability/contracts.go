package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	FindOverlapForManicurist(ctx context.Context, manicuristID string, start, end time.Time, excludeID *string) (*domain.Appointment, error)
	FindOverlapForClient(ctx context.Context, clientID string, start, end time.Time, excludeID *string) (*domain.Appointment, error)
}

// ManicuristRepository интерфейс репозитория мастеров
type ManicuristRepository interface {
	GetScheduleForDay(ctx context.Context, manicuristID string, dayOfWeek int) (*domain.Schedule, error)
	FindBlockedOverlap(ctx context.Context, manicuristID string, start, end time.Time) (*domain.BlockedTime, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
