package notifications

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/whatsapp"
)

var (
	// ErrSendFailed доставка не удалась, задание должно уйти на повтор
	ErrSendFailed = errors.New("service/notifications: send failed")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("service/notifications: internal error")
)

// Service отправляет WhatsApp-уведомления по заданиям из очереди
type Service struct {
	appointmentRepo  AppointmentRepository
	notificationRepo NotificationRepository
	settingsRepo     SettingsRepository
	sender           Sender
	timeProvider     TimeProvider
	logger           Logger
}

// NewService создает новый экземпляр диспетчера уведомлений
func NewService(
	appointmentRepo AppointmentRepository,
	notificationRepo NotificationRepository,
	settingsRepo SettingsRepository,
	sender Sender,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo:  appointmentRepo,
		notificationRepo: notificationRepo,
		settingsRepo:     settingsRepo,
		sender:           sender,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Process обрабатывает задание на отправку уведомления.
// Состояние записи перечитывается на момент отправки: удаленная запись или
// отмененная запись с неактуальным уведомлением пропускаются без ошибки.
// Ошибка отправки фиксируется в журнале и возвращается, чтобы очередь
// повторила задание
func (s *Service) Process(ctx context.Context, appointmentID string, ntype domain.NotificationType) error {
	details, err := s.appointmentRepo.GetDetailsByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Process: appointment=%s no longer exists, skipping %s", appointmentID, ntype)
			return nil
		}
		s.logger.Error("Process: repository error for appointment=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: Process - repository error: %v", ErrInternal, err)
	}

	// Для отмененной записи актуально только уведомление об отмене
	if details.Status == domain.StatusCancelled && ntype != domain.NotificationCancellation {
		s.logger.Info("Process: appointment=%s cancelled, skipping %s", appointmentID, ntype)
		return nil
	}

	record, err := s.notificationRepo.FindOrCreate(ctx, appointmentID, ntype)
	if err != nil {
		s.logger.Error("Process: failed to create notification record for appointment=%s: %v", appointmentID, err)
		return fmt.Errorf("%w: Process - notification record: %v", ErrInternal, err)
	}

	settingKey, fallback := templateFor(ntype)
	template, err := s.settingsRepo.GetString(ctx, details.BusinessID, settingKey, fallback)
	if err != nil {
		s.logger.Warn("Process: settings lookup failed for business=%s, using default template: %v", details.BusinessID, err)
		template = fallback
	}

	body := renderTemplate(template, details)

	result, err := s.sender.SendText(ctx, whatsapp.Message{To: details.Client.Phone, Body: body})
	if err != nil {
		s.logger.Error("Process: send failed for appointment=%s type=%s: %v", appointmentID, ntype, err)
		if markErr := s.notificationRepo.MarkFailed(ctx, record.ID, err.Error()); markErr != nil {
			s.logger.Error("Process: failed to mark notification=%s as failed: %v", record.ID, markErr)
		}
		return fmt.Errorf("%w: %s for appointment=%s: %v", ErrSendFailed, ntype, appointmentID, err)
	}

	var externalID *string
	if result != nil && result.ExternalID != "" {
		externalID = &result.ExternalID
	}

	// Сообщение уже ушло клиенту: ошибка учета не должна возвращать задание
	// в очередь, иначе отправка повторится
	sentAt := sql.NullTime{Time: s.timeProvider.Now(), Valid: true}
	if err := s.notificationRepo.MarkSent(ctx, record.ID, externalID, sentAt); err != nil {
		s.logger.Error("Process: failed to mark notification=%s as sent: %v", record.ID, err)
	}

	s.logger.Info("Process: %s sent for appointment=%s to %s", ntype, appointmentID, details.Client.Phone)
	return nil
}
