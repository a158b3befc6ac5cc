package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс агрегирующих выборок по записям
type AppointmentRepository interface {
	CountByStatusBetween(ctx context.Context, businessID string, from, to time.Time) (map[domain.AppointmentStatus]int64, error)
	SumCompletedRevenueBetween(ctx context.Context, businessID string, from, to time.Time) (decimal.Decimal, error)
	ProductivityBetween(ctx context.Context, businessID string, from, to time.Time) ([]*domain.ManicuristProductivity, error)
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
