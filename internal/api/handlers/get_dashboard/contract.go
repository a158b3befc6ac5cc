package get_dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// DashboardService аналитика салона
type DashboardService interface {
	GetStats(ctx context.Context, businessID string, from, to *time.Time) (*domain.DashboardStats, error)
	GetProductivity(ctx context.Context, businessID string, from, to *time.Time) ([]*domain.ManicuristProductivity, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
