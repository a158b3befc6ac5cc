package manicurists

import "errors"

var (
	// ErrManicuristNotFound мастер не найден
	ErrManicuristNotFound = errors.New("service/manicurists: manicurist not found")

	// ErrBlockedTimeNotFound блокировка не найдена
	ErrBlockedTimeNotFound = errors.New("service/manicurists: blocked time not found")

	// ErrInvalidSchedule недельный график не прошел валидацию
	ErrInvalidSchedule = errors.New("service/manicurists: invalid schedule")

	// ErrInvalidBlockedTime некорректный интервал блокировки
	ErrInvalidBlockedTime = errors.New("service/manicurists: invalid blocked time")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service/manicurists: internal error")
)
