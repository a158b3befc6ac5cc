package notifications

import (
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Ключи шаблонов в настройках салона
const (
	SettingTemplateConfirmation = "notifications.template.confirmation"
	SettingTemplateReminder     = "notifications.template.reminder"
	SettingTemplateCancellation = "notifications.template.cancellation"
)

// Встроенные шаблоны сообщений (испанский, аргентинский вариант).
// Салон может переопределить любой шаблон через настройки
const (
	defaultConfirmationTemplate = "¡Hola {clientName}! Tu turno de {serviceName} con {manicuristName} fue confirmado para el {date} a las {time}. ¡Te esperamos!"
	defaultReminderTemplate     = "¡Hola {clientName}! Te recordamos tu turno de {serviceName} con {manicuristName} el {date} a las {time}. Si no podés venir, avisanos con anticipación."
	defaultCancellationTemplate = "Hola {clientName}, tu turno de {serviceName} del {date} a las {time} fue cancelado. Escribinos para reprogramarlo."
)

// templateFor возвращает ключ настройки и встроенный шаблон для типа уведомления
func templateFor(ntype domain.NotificationType) (settingKey, fallback string) {
	switch ntype {
	case domain.NotificationReminder24h:
		return SettingTemplateReminder, defaultReminderTemplate
	case domain.NotificationCancellation:
		return SettingTemplateCancellation, defaultCancellationTemplate
	default:
		return SettingTemplateConfirmation, defaultConfirmationTemplate
	}
}

// renderTemplate подставляет данные записи в плейсхолдеры шаблона
func renderTemplate(template string, details *domain.AppointmentDetails) string {
	replacer := strings.NewReplacer(
		"{clientName}", details.Client.Name,
		"{serviceName}", details.Service.Name,
		"{manicuristName}", details.Manicurist.Name,
		"{date}", details.StartAt.Format(domain.DateFormat),
		"{time}", details.StartAt.Format(domain.TimeFormat),
	)
	return replacer.Replace(template)
}
