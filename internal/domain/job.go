package domain

import "time"

// JobStatus статус отложенного задания
type JobStatus string

const (
	JobPending    JobStatus = "PENDING"
	JobProcessing JobStatus = "PROCESSING"
	JobDone       JobStatus = "DONE"
	JobDead       JobStatus = "DEAD"
)

// NotificationJob отложенное задание на отправку WhatsApp-уведомления.
// JobID детерминирован ("confirm-<id>", "reminder-<id>", "cancel-<id>"):
// повторная постановка того же задания перезаписывает существующее
type NotificationJob struct {
	ID            int64
	JobID         string
	AppointmentID string
	Type          NotificationType
	RunAt         time.Time
	Status        JobStatus
	Attempts      int
	MaxAttempts   int
	LastError     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// JobMaxAttempts число попыток доставки до перевода задания в DEAD
const JobMaxAttempts = 3

// JobRetryBase базовая задержка перед повторной попыткой, удваивается с каждой неудачей
const JobRetryBase = 5 * time.Second

// JobLeaseTimeout срок аренды захваченного задания: PROCESSING без обновления
// дольше этого срока считается брошенным упавшим воркером и захватывается заново
const JobLeaseTimeout = 10 * time.Minute

// NextRetryDelay экспоненциальная задержка перед попыткой attempt (нумерация с 1)
func NextRetryDelay(attempt int) time.Duration {
	delay := JobRetryBase
	for i := 1; i < attempt; i++ {
		delay *= 2
	}
	return delay
}
