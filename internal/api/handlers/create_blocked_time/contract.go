package create_blocked_time

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// ManicuristsService интерфейс сервиса мастеров
type ManicuristsService interface {
	CreateBlockedTime(ctx context.Context, manicuristID string, startAt, endAt time.Time, reason *string) (*domain.BlockedTime, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
