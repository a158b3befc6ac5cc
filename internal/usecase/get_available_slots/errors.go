package get_available_slots

import "errors"

var (
	// ErrInvalidManicuristID не указан мастер
	ErrInvalidManicuristID = errors.New("get_available_slots: invalid manicurist id")

	// ErrInvalidDuration длительность услуги вне допустимых пределов
	ErrInvalidDuration = errors.New("get_available_slots: invalid duration")

	// ErrManicuristNotFound мастер не найден
	ErrManicuristNotFound = errors.New("get_available_slots: manicurist not found")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("get_available_slots: internal error")
)
