package get_manicurists

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ManicuristsService интерфейс сервиса мастеров
type ManicuristsService interface {
	List(ctx context.Context, businessID *string) ([]*domain.Manicurist, error)
	GetWithSchedule(ctx context.Context, id string) (*domain.Manicurist, []*domain.Schedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
