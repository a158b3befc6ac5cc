package appointments

import "errors"

var (
	// ErrAppointmentNotFound запись не найдена
	ErrAppointmentNotFound = errors.New("service/appointments: appointment not found")

	// ErrNotCancellable завершенную запись отменить нельзя
	ErrNotCancellable = errors.New("service/appointments: appointment cannot be cancelled")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service/appointments: internal error")
)
