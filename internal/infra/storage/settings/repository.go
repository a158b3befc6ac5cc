package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

var (
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("storage/settings: failed to build query")

	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("storage/settings: failed to execute query")
)

// Repository хранилище настроек салона (key-value)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр хранилища настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetString возвращает строковое значение настройки либо fallback, если она не задана
func (r *Repository) GetString(ctx context.Context, businessID, key, fallback string) (string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("value").
		From("app_settings").
		Where(squirrel.Eq{"business_id": businessID, "key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: GetString - build select query: %v", ErrBuildQuery, err)
	}

	var value string
	err = executor.QueryRowContext(ctx, query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: GetString - execute query: %v", ErrExecQuery, err)
	}

	return value, nil
}
