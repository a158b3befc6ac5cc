package update_schedule

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ManicuristsService интерфейс сервиса мастеров
type ManicuristsService interface {
	UpdateWeeklySchedule(ctx context.Context, manicuristID string, schedules []domain.Schedule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
