package create_appointment

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("create_appointment: invalid input")

	// ErrServiceNotFound услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrClientNotFound клиент не найден
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrManicuristNotFound мастер не найден
	ErrManicuristNotFound = errors.New("create_appointment: manicurist not found")

	// ErrSlotNotAvailable интервал у мастера занят или вне графика
	ErrSlotNotAvailable = errors.New("create_appointment: slot not available")

	// ErrClientConflict у клиента уже есть запись на пересекающееся время
	ErrClientConflict = errors.New("create_appointment: client already booked")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("create_appointment: internal error")
)
