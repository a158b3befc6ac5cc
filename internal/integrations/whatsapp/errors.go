package whatsapp

import "errors"

var (
	// ErrInternal ошибка построения или выполнения запроса к провайдеру
	ErrInternal = errors.New("integrations/whatsapp: internal error")

	// ErrInvalidResponse провайдер вернул неожиданный ответ
	ErrInvalidResponse = errors.New("integrations/whatsapp: invalid provider response")

	// ErrSendFailed провайдер отклонил отправку сообщения
	ErrSendFailed = errors.New("integrations/whatsapp: send failed")

	// ErrUnknownProvider неизвестный провайдер в конфигурации
	ErrUnknownProvider = errors.New("integrations/whatsapp: unknown provider")
)
