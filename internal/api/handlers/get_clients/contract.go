package get_clients

import (
	"context"

	"github.com/m04kA/SMC-AppointmentService/internal/service/clients"
)

// ClientsService интерфейс сервиса клиентов
type ClientsService interface {
	GetByID(ctx context.Context, id string) (*clients.ClientDetails, error)
	Search(ctx context.Context, businessID, query string, page, limit int) (*clients.SearchResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
