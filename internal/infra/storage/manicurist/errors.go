package manicurist

import "errors"

var (
	// ErrManicuristNotFound возвращается, когда мастер не найден
	ErrManicuristNotFound = errors.New("manicurist.repository: manicurist not found")

	// ErrBlockedTimeNotFound возвращается, когда интервал блокировки не найден
	ErrBlockedTimeNotFound = errors.New("manicurist.repository: blocked time not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("manicurist.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("manicurist.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("manicurist.repository: failed to scan row")
)
