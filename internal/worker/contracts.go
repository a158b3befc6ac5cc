package worker

import (
	"context"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// JobQueue очередь заданий на отправку уведомлений
type JobQueue interface {
	ClaimDue(ctx context.Context, now time.Time, types []domain.NotificationType, limit int) ([]*domain.NotificationJob, error)
	Complete(ctx context.Context, id int64) error
	Fail(ctx context.Context, job *domain.NotificationJob, jobErr string, now time.Time) error
}

// Dispatcher отправляет уведомление по записи
type Dispatcher interface {
	Process(ctx context.Context, appointmentID string, ntype domain.NotificationType) error
}

// AppointmentsService операции над записями
type AppointmentsService interface {
	AutoCompleteExpired(ctx context.Context) (int64, error)
}

// RemindersService восстановление пропущенных напоминаний
type RemindersService interface {
	ReconcileReminders(ctx context.Context) (int, error)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider возвращает реальное текущее время
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
