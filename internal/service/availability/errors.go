package availability

import "errors"

var (
	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service/availability: internal error")
)
