package get_next_available_slots

import (
	"context"

	getNextAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_next_available_slots"
)

// GetNextAvailableSlotsUseCase интерфейс use case поиска ближайших слотов
type GetNextAvailableSlotsUseCase interface {
	Execute(ctx context.Context, req *getNextAvailableSlots.Request) (*getNextAvailableSlots.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
