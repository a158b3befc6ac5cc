package client

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL при нарушении уникального ограничения
const pgUniqueViolation = "23505"

var clientColumns = []string{
	"id", "business_id", "name", "phone", "email", "notes", "created_at", "updated_at",
}

// Repository репозиторий для работы с клиентами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает клиента
// Уникальность телефона в рамках салона обеспечивает constraint в БД:
// нарушение транслируется в ErrPhoneExists
func (r *Repository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("clients").
		Columns("id", "business_id", "name", "phone", "email", "notes").
		Values(c.ID, c.BusinessID, c.Name, c.Phone, c.Email, c.Notes).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrPhoneExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return c, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	c, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan client: %v", ErrScanRow, err)
	}

	return c, nil
}

// UpdateFields частичное обновление клиента
type UpdateFields struct {
	Name  *string
	Phone *string
	Email *string // пустая строка сбрасывает email в NULL
	Notes *string
}

// Update применяет частичное обновление и возвращает обновленного клиента
func (r *Repository) Update(ctx context.Context, id string, fields UpdateFields) (*domain.Client, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("clients").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if fields.Name != nil {
		builder = builder.Set("name", *fields.Name)
	}
	if fields.Phone != nil {
		builder = builder.Set("phone", *fields.Phone)
	}
	if fields.Email != nil {
		if *fields.Email == "" {
			builder = builder.Set("email", nil)
		} else {
			builder = builder.Set("email", *fields.Email)
		}
	}
	if fields.Notes != nil {
		builder = builder.Set("notes", *fields.Notes)
	}

	query, args, err := builder.
		Suffix("RETURNING id, business_id, name, phone, email, notes, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	c, err := scanClient(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrClientNotFound
	}
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrPhoneExists
		}
		return nil, fmt.Errorf("%w: Update - scan client: %v", ErrScanRow, err)
	}

	return c, nil
}

// Search ищет клиентов по имени/телефону/email с пагинацией
// Пустой query возвращает всех клиентов салона, отсортированных по имени
func (r *Repository) Search(ctx context.Context, businessID, search string, offset, limit int) ([]*domain.Client, int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	where := squirrel.And{squirrel.Eq{"business_id": businessID}}
	if search != "" {
		pattern := "%" + search + "%"
		where = append(where, squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.Like{"phone": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	countQuery, countArgs, err := psqlbuilder.Select("COUNT(*)").
		From("clients").
		Where(where).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: Search - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: Search - scan count: %v", ErrScanRow, err)
	}

	query, args, err := psqlbuilder.Select(clientColumns...).
		From("clients").
		Where(where).
		OrderBy("name ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: Search - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: Search - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: Search - scan row: %v", ErrScanRow, err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: Search - rows error: %v", ErrScanRow, err)
	}

	return clients, total, nil
}

// Delete удаляет клиента (guard по будущим записям - на уровне сервиса)
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("clients").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanClient(s scanner) (*domain.Client, error) {
	var c domain.Client
	var createdAt, updatedAt sql.NullTime
	if err := s.Scan(&c.ID, &c.BusinessID, &c.Name, &c.Phone, &c.Email, &c.Notes, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time
	return &c, nil
}
