package jobs

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

var jobColumns = []string{
	"id", "job_id", "appointment_id", "type", "run_at", "status",
	"attempts", "max_attempts", "last_error", "created_at", "updated_at",
}

// Repository очередь отложенных заданий на базе PostgreSQL
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр очереди заданий
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Enqueue ставит задание в очередь. Upsert по job_id: повторная постановка
// сбрасывает время запуска, счетчик попыток и возвращает задание в PENDING
func (r *Repository) Enqueue(ctx context.Context, jobID, appointmentID string, ntype domain.NotificationType, runAt time.Time) (*domain.NotificationJob, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notification_jobs").
		Columns("job_id", "appointment_id", "type", "run_at", "status", "attempts", "max_attempts").
		Values(jobID, appointmentID, string(ntype), runAt, string(domain.JobPending), 0, domain.JobMaxAttempts).
		Suffix(`ON CONFLICT (job_id) DO UPDATE SET
			run_at = EXCLUDED.run_at,
			status = EXCLUDED.status,
			attempts = 0,
			last_error = NULL,
			updated_at = NOW()`).
		Suffix("RETURNING " + strings.Join(jobColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Enqueue - build upsert query: %v", ErrBuildQuery, err)
	}

	job, err := scanJob(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Enqueue - scan job: %v", ErrScanRow, err)
	}

	return job, nil
}

// ClaimDue атомарно захватывает до limit созревших заданий в обработку.
// Помимо PENDING захватываются PROCESSING-задания с истекшей арендой:
// воркер, упавший между захватом и завершением, не теряет задание навсегда.
// FOR UPDATE SKIP LOCKED позволяет нескольким воркерам работать без конфликтов
func (r *Repository) ClaimDue(ctx context.Context, now time.Time, types []domain.NotificationType, limit int) ([]*domain.NotificationJob, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	typeStrings := make([]string, 0, len(types))
	for _, t := range types {
		typeStrings = append(typeStrings, string(t))
	}

	// Подзапрос собирается с плейсхолдерами "?", нумерацию в $N делает
	// единственный внешний ToSql, иначе аргументы разъезжаются с номерами
	sub, subArgs, err := squirrel.Select("id").
		From("notification_jobs").
		Where(squirrel.Eq{"type": typeStrings}).
		Where(squirrel.Or{
			squirrel.And{
				squirrel.Eq{"status": string(domain.JobPending)},
				squirrel.LtOrEq{"run_at": now},
			},
			squirrel.And{
				squirrel.Eq{"status": string(domain.JobProcessing)},
				squirrel.Lt{"updated_at": now.Add(-domain.JobLeaseTimeout)},
			},
		}).
		OrderBy("run_at ASC").
		Limit(uint64(limit)).
		Suffix("FOR UPDATE SKIP LOCKED").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ClaimDue - build subquery: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("notification_jobs").
		Set("status", string(domain.JobProcessing)).
		Set("attempts", squirrel.Expr("attempts + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where("id IN ("+sub+")", subArgs...).
		Suffix("RETURNING " + strings.Join(jobColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ClaimDue - build update query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ClaimDue - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	claimed := make([]*domain.NotificationJob, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ClaimDue - scan row: %v", ErrScanRow, err)
		}
		claimed = append(claimed, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ClaimDue - rows error: %v", ErrScanRow, err)
	}

	return claimed, nil
}

// Complete помечает задание выполненным
func (r *Repository) Complete(ctx context.Context, id int64) error {
	builder := psqlbuilder.Update("notification_jobs").
		Set("status", string(domain.JobDone)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	return r.execUpdate(ctx, builder, "Complete")
}

// Fail фиксирует неудачную попытку. Пока попытки не исчерпаны, задание
// возвращается в PENDING с экспоненциальной задержкой, иначе уходит в DEAD
func (r *Repository) Fail(ctx context.Context, job *domain.NotificationJob, jobErr string, now time.Time) error {
	builder := psqlbuilder.Update("notification_jobs").
		Set("last_error", jobErr).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": job.ID})

	if job.Attempts >= job.MaxAttempts {
		builder = builder.Set("status", string(domain.JobDead))
	} else {
		builder = builder.
			Set("status", string(domain.JobPending)).
			Set("run_at", now.Add(domain.NextRetryDelay(job.Attempts)))
	}

	return r.execUpdate(ctx, builder, "Fail")
}

// Remove удаляет задание по детерминированному job_id.
// Отсутствие задания не считается ошибкой: оно могло уже выполниться
func (r *Repository) Remove(ctx context.Context, jobID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("notification_jobs").
		Where(squirrel.Eq{"job_id": jobID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Remove - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Remove - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByJobID возвращает задание по детерминированному job_id
func (r *Repository) GetByJobID(ctx context.Context, jobID string) (*domain.NotificationJob, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(jobColumns...).
		From("notification_jobs").
		Where(squirrel.Eq{"job_id": jobID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByJobID - build select query: %v", ErrBuildQuery, err)
	}

	job, err := scanJob(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByJobID - scan job: %v", ErrScanRow, err)
	}

	return job, nil
}

func (r *Repository) execUpdate(ctx context.Context, builder squirrel.UpdateBuilder, method string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

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
		return ErrJobNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(s scanner) (*domain.NotificationJob, error) {
	var job domain.NotificationJob
	var ntype, status string
	var createdAt, updatedAt sql.NullTime
	if err := s.Scan(
		&job.ID, &job.JobID, &job.AppointmentID, &ntype, &job.RunAt, &status,
		&job.Attempts, &job.MaxAttempts, &job.LastError, &createdAt, &updatedAt,
	); err != nil {
		return nil, err
	}
	job.Type = domain.NotificationType(ntype)
	job.Status = domain.JobStatus(status)
	job.CreatedAt = createdAt.Time
	job.UpdatedAt = updatedAt.Time
	return &job, nil
}
