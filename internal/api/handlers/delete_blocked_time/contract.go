package delete_blocked_time

import "context"

// ManicuristsService операции с блокировками времени
type ManicuristsService interface {
	DeleteBlockedTime(ctx context.Context, blockedTimeID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
