package domain

import "time"

// NotificationType тип WhatsApp-уведомления
type NotificationType string

const (
	NotificationConfirmation NotificationType = "CONFIRMATION"
	NotificationReminder24h  NotificationType = "REMINDER_24H"
	NotificationCancellation NotificationType = "CANCELLATION"
)

// NotificationStatus статус доставки уведомления
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "PENDING"
	NotificationSent    NotificationStatus = "SENT"
	NotificationFailed  NotificationStatus = "FAILED"
)

// Notification журнал доставки уведомлений
// Инвариант: не более одной строки на пару (AppointmentID, Type) -
// строка создается при первой обработке задания и обновляется при каждой попытке
type Notification struct {
	ID            string
	AppointmentID string
	Type          NotificationType
	Status        NotificationStatus
	ExternalID    *string
	Error         *string
	SentAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ValidNotificationType проверяет, что строка - допустимый тип уведомления
func ValidNotificationType(s string) (NotificationType, bool) {
	switch NotificationType(s) {
	case NotificationConfirmation, NotificationReminder24h, NotificationCancellation:
		return NotificationType(s), true
	}
	return "", false
}
