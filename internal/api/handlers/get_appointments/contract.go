package get_appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentsService интерфейс сервиса записей
type AppointmentsService interface {
	GetByID(ctx context.Context, id string) (*domain.AppointmentDetails, error)
	GetByDate(ctx context.Context, date time.Time, filter domain.AppointmentsFilter) ([]*domain.AppointmentDetails, error)
	GetByWeek(ctx context.Context, weekStart time.Time, filter domain.AppointmentsFilter) ([]*domain.AppointmentDetails, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
