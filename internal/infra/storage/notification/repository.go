package notification

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

var notificationColumns = []string{
	"id", "appointment_id", "type", "status", "external_id", "error", "sent_at", "created_at", "updated_at",
}

// Repository репозиторий журнала уведомлений
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindOrCreate возвращает строку журнала для пары (appointmentID, type),
// создавая ее в статусе PENDING при первой обработке.
// Повторные попытки отправки переиспользуют ту же строку
func (r *Repository) FindOrCreate(ctx context.Context, appointmentID string, ntype domain.NotificationType) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("id", "appointment_id", "type", "status").
		Values(uuid.NewString(), appointmentID, string(ntype), string(domain.NotificationPending)).
		Suffix("ON CONFLICT (appointment_id, type) DO UPDATE SET updated_at = NOW()").
		Suffix("RETURNING " + joinColumns(notificationColumns)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOrCreate - build upsert query: %v", ErrBuildQuery, err)
	}

	n, err := scanNotification(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: FindOrCreate - scan notification: %v", ErrScanRow, err)
	}

	return n, nil
}

// MarkSent фиксирует успешную доставку: статус SENT, внешний ID провайдера, время отправки
func (r *Repository) MarkSent(ctx context.Context, id string, externalID *string, sentAt sql.NullTime) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("notifications").
		Set("status", string(domain.NotificationSent)).
		Set("external_id", externalID).
		Set("error", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
	if sentAt.Valid {
		builder = builder.Set("sent_at", sentAt.Time)
	} else {
		builder = builder.Set("sent_at", squirrel.Expr("NOW()"))
	}

	return r.execUpdate(ctx, executor, builder, "MarkSent")
}

// MarkFailed фиксирует неудачную попытку: статус FAILED и текст ошибки
func (r *Repository) MarkFailed(ctx context.Context, id string, sendErr string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("notifications").
		Set("status", string(domain.NotificationFailed)).
		Set("error", sendErr).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.execUpdate(ctx, executor, builder, "MarkFailed")
}

func (r *Repository) execUpdate(ctx context.Context, executor dbmetrics.DBExecutor, builder squirrel.UpdateBuilder, method string) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, method, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanNotification(s scanner) (*domain.Notification, error) {
	var n domain.Notification
	var ntype, status string
	var createdAt, updatedAt sql.NullTime
	if err := s.Scan(&n.ID, &n.AppointmentID, &ntype, &status, &n.ExternalID, &n.Error, &n.SentAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	n.Type = domain.NotificationType(ntype)
	n.Status = domain.NotificationStatus(status)
	n.CreatedAt = createdAt.Time
	n.UpdatedAt = updatedAt.Time
	return &n, nil
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
