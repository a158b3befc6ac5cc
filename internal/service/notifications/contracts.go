package notifications

import (
	"context"
	"database/sql"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/whatsapp"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetDetailsByID(ctx context.Context, id string) (*domain.AppointmentDetails, error)
}

// NotificationRepository интерфейс журнала уведомлений
type NotificationRepository interface {
	FindOrCreate(ctx context.Context, appointmentID string, ntype domain.NotificationType) (*domain.Notification, error)
	MarkSent(ctx context.Context, id string, externalID *string, sentAt sql.NullTime) error
	MarkFailed(ctx context.Context, id string, sendErr string) error
}

// SettingsRepository интерфейс хранилища настроек салона
type SettingsRepository interface {
	GetString(ctx context.Context, businessID, key, fallback string) (string, error)
}

// Sender интерфейс отправки WhatsApp-сообщений
type Sender interface {
	SendText(ctx context.Context, msg whatsapp.Message) (*whatsapp.Result, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реализация TimeProvider на системных часах
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time { return time.Now() }

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
