package clients

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/storage/client"
)

// ClientRepository интерфейс репозитория клиентов
type ClientRepository interface {
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Update(ctx context.Context, id string, fields client.UpdateFields) (*domain.Client, error)
	Search(ctx context.Context, businessID, search string, offset, limit int) ([]*domain.Client, int64, error)
	Delete(ctx context.Context, id string) error
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	ListDetailsByClient(ctx context.Context, clientID string, limit int) ([]*domain.AppointmentDetails, error)
	HasFutureActiveByClient(ctx context.Context, clientID string, now time.Time) (bool, error)
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
