package clients

import "errors"

var (
	// ErrClientNotFound клиент не найден
	ErrClientNotFound = errors.New("service/clients: client not found")

	// ErrPhoneExists телефон уже занят другим клиентом салона
	ErrPhoneExists = errors.New("service/clients: phone already registered")

	// ErrInvalidPhone телефон не удалось привести к формату E.164
	ErrInvalidPhone = errors.New("service/clients: invalid phone number")

	// ErrHasFutureAppointments у клиента есть будущие активные записи
	ErrHasFutureAppointments = errors.New("service/clients: client has future appointments")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service/clients: internal error")
)
