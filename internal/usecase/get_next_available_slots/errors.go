package get_next_available_slots

import "errors"

var (
	// ErrInvalidDuration длительность услуги вне допустимых пределов
	ErrInvalidDuration = errors.New("get_next_available_slots: invalid duration")

	// ErrManicuristNotFound один из указанных мастеров не найден
	ErrManicuristNotFound = errors.New("get_next_available_slots: manicurist not found")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_next_available_slots: internal error")
)
