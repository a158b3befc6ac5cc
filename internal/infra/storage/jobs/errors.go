package jobs

import "errors"

var (
	// ErrJobNotFound задание не найдено
	ErrJobNotFound = errors.New("storage/jobs: job not found")

	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("storage/jobs: failed to build query")

	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("storage/jobs: failed to execute query")

	// ErrScanRow ошибка сканирования строки результата
	ErrScanRow = errors.New("storage/jobs: failed to scan row")
)
