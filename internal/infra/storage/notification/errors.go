package notification

import "errors"

var (
	// ErrNotificationNotFound уведомление не найдено
	ErrNotificationNotFound = errors.New("storage/notification: notification not found")

	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("storage/notification: failed to build query")

	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("storage/notification: failed to execute query")

	// ErrScanRow ошибка сканирования строки результата
	ErrScanRow = errors.New("storage/notification: failed to scan row")
)
