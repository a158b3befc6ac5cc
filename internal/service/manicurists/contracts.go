package manicurists

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ManicuristRepository интерфейс репозитория мастеров
type ManicuristRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Manicurist, error)
	ListActive(ctx context.Context, businessID *string) ([]*domain.Manicurist, error)
	ListSchedules(ctx context.Context, manicuristID string) ([]*domain.Schedule, error)
	ReplaceWeeklySchedule(ctx context.Context, manicuristID string, schedules []domain.Schedule) error
	CreateBlockedTime(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error)
	DeleteBlockedTime(ctx context.Context, id string) error
	ListBlockedBetween(ctx context.Context, manicuristID string, from, to time.Time) ([]*domain.BlockedTime, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
