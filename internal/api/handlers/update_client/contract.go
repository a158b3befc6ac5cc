package update_client

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/clients"
)

// ClientsService интерфейс сервиса клиентов
type ClientsService interface {
	Update(ctx context.Context, id string, in clients.UpdateInput) (*domain.Client, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
