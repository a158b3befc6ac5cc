package manicurist

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с мастерами, их расписаниями и блокировками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мастеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает мастера по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Manicurist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "business_id", "name", "color", "is_active", "created_at", "updated_at",
	).
		From("manicurists").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var m domain.Manicurist
	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&m.ID, &m.BusinessID, &m.Name, &m.Color, &m.IsActive, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrManicuristNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan manicurist: %v", ErrScanRow, err)
	}

	m.CreatedAt = createdAt.Time
	m.UpdatedAt = updatedAt.Time
	return &m, nil
}

// ListActive получает активных мастеров, опционально в рамках одного салона
func (r *Repository) ListActive(ctx context.Context, businessID *string) ([]*domain.Manicurist, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(
		"id", "business_id", "name", "color", "is_active", "created_at", "updated_at",
	).
		From("manicurists").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("name ASC")

	if businessID != nil {
		builder = builder.Where(squirrel.Eq{"business_id": *businessID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	manicurists := make([]*domain.Manicurist, 0)
	for rows.Next() {
		var m domain.Manicurist
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.BusinessID, &m.Name, &m.Color, &m.IsActive, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}
		m.CreatedAt = createdAt.Time
		m.UpdatedAt = updatedAt.Time
		manicurists = append(manicurists, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return manicurists, nil
}

// GetScheduleForDay получает строку расписания мастера на день недели
// Возвращает nil без ошибки, если расписания на этот день нет
func (r *Repository) GetScheduleForDay(ctx context.Context, manicuristID string, dayOfWeek int) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "manicurist_id", "day_of_week", "start_time", "end_time", "is_active",
	).
		From("schedules").
		Where(squirrel.Eq{"manicurist_id": manicuristID, "day_of_week": dayOfWeek}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleForDay - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Schedule
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID, &s.ManicuristID, &s.DayOfWeek, &s.StartTime, &s.EndTime, &s.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetScheduleForDay - scan schedule: %v", ErrScanRow, err)
	}

	return &s, nil
}

// ListSchedules получает все строки недельного расписания мастера
func (r *Repository) ListSchedules(ctx context.Context, manicuristID string) ([]*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "manicurist_id", "day_of_week", "start_time", "end_time", "is_active",
	).
		From("schedules").
		Where(squirrel.Eq{"manicurist_id": manicuristID}).
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListSchedules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSchedules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedules := make([]*domain.Schedule, 0)
	for rows.Next() {
		var s domain.Schedule
		if err := rows.Scan(&s.ID, &s.ManicuristID, &s.DayOfWeek, &s.StartTime, &s.EndTime, &s.IsActive); err != nil {
			return nil, fmt.Errorf("%w: ListSchedules - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// ReplaceWeeklySchedule заменяет недельное расписание мастера целиком
// (семантика replace-all-7-days). Вызывающая сторона оборачивает в транзакцию
func (r *Repository) ReplaceWeeklySchedule(ctx context.Context, manicuristID string, schedules []domain.Schedule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("schedules").
		Where(squirrel.Eq{"manicurist_id": manicuristID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklySchedule - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklySchedule - execute delete: %v", ErrExecQuery, err)
	}

	if len(schedules) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("schedules").
		Columns("id", "manicurist_id", "day_of_week", "start_time", "end_time", "is_active")
	for _, s := range schedules {
		id := s.ID
		if id == "" {
			id = uuid.NewString()
		}
		builder = builder.Values(id, manicuristID, s.DayOfWeek, s.StartTime, s.EndTime, s.IsActive)
	}

	query, args, err = builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklySchedule - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklySchedule - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// FindBlockedOverlap ищет блокировку мастера, пересекающуюся с [start, end)
// Возвращает nil, если пересечений нет
func (r *Repository) FindBlockedOverlap(ctx context.Context, manicuristID string, start, end time.Time) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "manicurist_id", "start_at", "end_at", "reason", "created_at",
	).
		From("blocked_times").
		Where(squirrel.Eq{"manicurist_id": manicuristID}).
		Where(squirrel.Lt{"start_at": end}).
		Where(squirrel.Gt{"end_at": start}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindBlockedOverlap - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBlockedTime(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindBlockedOverlap - scan blocked time: %v", ErrScanRow, err)
	}

	return b, nil
}

// ListBlockedBetween получает блокировки мастера, пересекающиеся с [from, to)
func (r *Repository) ListBlockedBetween(ctx context.Context, manicuristID string, from, to time.Time) ([]*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "manicurist_id", "start_at", "end_at", "reason", "created_at",
	).
		From("blocked_times").
		Where(squirrel.Eq{"manicurist_id": manicuristID}).
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBlockedBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocked := make([]*domain.BlockedTime, 0)
	for rows.Next() {
		b, err := scanBlockedTime(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListBlockedBetween - scan row: %v", ErrScanRow, err)
		}
		blocked = append(blocked, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBlockedBetween - rows error: %v", ErrScanRow, err)
	}

	return blocked, nil
}

// CreateBlockedTime создает разовый интервал недоступности мастера
func (r *Repository) CreateBlockedTime(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if block.ID == "" {
		block.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("blocked_times").
		Columns("id", "manicurist_id", "start_at", "end_at", "reason").
		Values(block.ID, block.ManicuristID, block.StartAt, block.EndAt, block.Reason).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedTime - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("%w: CreateBlockedTime - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	return block, nil
}

// DeleteBlockedTime удаляет интервал блокировки
func (r *Repository) DeleteBlockedTime(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("blocked_times").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedTime - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedTime - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBlockedTime - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBlockedTimeNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBlockedTime(s scanner) (*domain.BlockedTime, error) {
	var b domain.BlockedTime
	var createdAt sql.NullTime
	if err := s.Scan(&b.ID, &b.ManicuristID, &b.StartAt, &b.EndAt, &b.Reason, &createdAt); err != nil {
		return nil, err
	}
	b.CreatedAt = createdAt.Time
	return &b, nil
}
