package whatsapp

import (
	"context"
	"time"
)

// DefaultTimeout таймаут HTTP-запросов к провайдерам WhatsApp
const DefaultTimeout = 20 * time.Second

// Message текстовое сообщение для отправки
type Message struct {
	// To телефон получателя в формате E.164
	To string
	// Body текст сообщения
	Body string
}

// Result результат отправки сообщения
type Result struct {
	// ExternalID идентификатор сообщения на стороне провайдера
	ExternalID string
}

// Provider интерфейс провайдера отправки WhatsApp-сообщений
type Provider interface {
	SendText(ctx context.Context, msg Message) (*Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
