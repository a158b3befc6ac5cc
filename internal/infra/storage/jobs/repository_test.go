package jobs

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

var errStop = errors.New("stop")

// captureExecutor перехватывает итоговый SQL и аргументы вместо исполнения
type captureExecutor struct {
	query string
	args  []interface{}
}

func (e *captureExecutor) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	e.query = query
	e.args = args
	return nil, errStop
}

func (e *captureExecutor) QueryRowContext(_ context.Context, query string, args ...interface{}) *sql.Row {
	e.query = query
	e.args = args
	return nil
}

func (e *captureExecutor) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	e.query = query
	e.args = args
	return nil, errStop
}

var placeholderRe = regexp.MustCompile(`\$(\d+)`)

// assertPlaceholdersMatchArgs проверяет, что каждый $N встречается ровно один
// раз и максимальный номер совпадает с числом аргументов
func assertPlaceholdersMatchArgs(t *testing.T, query string, args []interface{}) {
	t.Helper()

	seen := make(map[int]int)
	max := 0
	for _, m := range placeholderRe.FindAllStringSubmatch(query, -1) {
		n, err := strconv.Atoi(m[1])
		require.NoError(t, err)
		seen[n]++
		if n > max {
			max = n
		}
	}

	assert.Equal(t, len(args), max, "максимальный плейсхолдер должен совпадать с числом аргументов: %s", query)
	for n := 1; n <= max; n++ {
		assert.Equal(t, 1, seen[n], "плейсхолдер $%d должен встречаться ровно один раз: %s", n, query)
	}
}

func TestClaimDue_PlaceholdersNumberedOnce(t *testing.T) {
	executor := &captureExecutor{}
	repo := NewRepository(executor)

	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	types := []domain.NotificationType{domain.NotificationConfirmation, domain.NotificationCancellation}

	_, err := repo.ClaimDue(context.Background(), now, types, 5)
	require.ErrorIs(t, err, ErrExecQuery)

	assertPlaceholdersMatchArgs(t, executor.query, executor.args)
	assert.Contains(t, executor.query, "FOR UPDATE SKIP LOCKED")
	assert.Contains(t, executor.query, "RETURNING")

	// Первый аргумент - статус PROCESSING из SET, фильтр по PENDING связан
	// со своим собственным плейсхолдером
	require.NotEmpty(t, executor.args)
	assert.Equal(t, string(domain.JobProcessing), executor.args[0])
	assert.Contains(t, executor.args, string(domain.JobPending))
}

func TestClaimDue_ReclaimsExpiredLeases(t *testing.T) {
	executor := &captureExecutor{}
	repo := NewRepository(executor)

	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	_, err := repo.ClaimDue(context.Background(), now, []domain.NotificationType{domain.NotificationReminder24h}, 1)
	require.ErrorIs(t, err, ErrExecQuery)

	// Брошенные PROCESSING-задания с истекшей арендой захватываются повторно
	assert.Contains(t, executor.query, "updated_at <")
	assert.Contains(t, executor.args, now.Add(-domain.JobLeaseTimeout))
	assertPlaceholdersMatchArgs(t, executor.query, executor.args)
}

func TestFail_BackoffUntilAttemptsExhausted(t *testing.T) {
	executor := &captureExecutor{}
	repo := NewRepository(executor)

	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	job := &domain.NotificationJob{ID: 7, Attempts: 1, MaxAttempts: domain.JobMaxAttempts}

	err := repo.Fail(context.Background(), job, "provider timeout", now)
	require.ErrorIs(t, err, ErrExecQuery)

	assert.Contains(t, executor.args, string(domain.JobPending))
	assert.Contains(t, executor.args, now.Add(domain.NextRetryDelay(job.Attempts)))
}

func TestFail_DeadAfterLastAttempt(t *testing.T) {
	executor := &captureExecutor{}
	repo := NewRepository(executor)

	now := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	job := &domain.NotificationJob{ID: 7, Attempts: domain.JobMaxAttempts, MaxAttempts: domain.JobMaxAttempts}

	err := repo.Fail(context.Background(), job, "provider timeout", now)
	require.ErrorIs(t, err, ErrExecQuery)

	assert.Contains(t, executor.args, string(domain.JobDead))
	assert.NotContains(t, executor.args, string(domain.JobPending))
}
