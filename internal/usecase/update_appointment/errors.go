package update_appointment

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("update_appointment: invalid input")

	// ErrAppointmentNotFound запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrNotEditable отмененную или завершенную запись изменить нельзя
	ErrNotEditable = errors.New("update_appointment: appointment is not editable")

	// ErrServiceNotFound услуга не найдена или неактивна
	ErrServiceNotFound = errors.New("update_appointment: service not found")

	// ErrManicuristNotFound мастер не найден
	ErrManicuristNotFound = errors.New("update_appointment: manicurist not found")

	// ErrSlotNotAvailable интервал у мастера занят или вне графика
	ErrSlotNotAvailable = errors.New("update_appointment: slot not available")

	// ErrClientConflict у клиента уже есть запись на пересекающееся время
	ErrClientConflict = errors.New("update_appointment: client already booked")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("update_appointment: internal error")
)
