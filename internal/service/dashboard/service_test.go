package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type revenueCall struct {
	from time.Time
	to   time.Time
}

type fakeRepo struct {
	counts    map[domain.AppointmentStatus]int64
	countsErr error

	revenueByCall []decimal.Decimal
	revenueCalls  []revenueCall

	productivity     []*domain.ManicuristProductivity
	productivityFrom time.Time
	productivityTo   time.Time
}

func (f *fakeRepo) CountByStatusBetween(ctx context.Context, businessID string, from, to time.Time) (map[domain.AppointmentStatus]int64, error) {
	if f.countsErr != nil {
		return nil, f.countsErr
	}
	return f.counts, nil
}

func (f *fakeRepo) SumCompletedRevenueBetween(ctx context.Context, businessID string, from, to time.Time) (decimal.Decimal, error) {
	f.revenueCalls = append(f.revenueCalls, revenueCall{from: from, to: to})
	if len(f.revenueByCall) >= len(f.revenueCalls) {
		return f.revenueByCall[len(f.revenueCalls)-1], nil
	}
	return decimal.Zero, nil
}

func (f *fakeRepo) ProductivityBetween(ctx context.Context, businessID string, from, to time.Time) ([]*domain.ManicuristProductivity, error) {
	f.productivityFrom = from
	f.productivityTo = to
	return f.productivity, nil
}

var testNow = time.Date(2026, 3, 5, 15, 45, 0, 0, time.UTC)

func TestGetStats_AggregatesToday(t *testing.T) {
	repo := &fakeRepo{
		counts: map[domain.AppointmentStatus]int64{
			domain.StatusPending:   2,
			domain.StatusConfirmed: 5,
			domain.StatusCompleted: 3,
			domain.StatusCancelled: 1,
		},
		revenueByCall: []decimal.Decimal{
			decimal.NewFromInt(45000),  // выручка за сегодня
			decimal.NewFromInt(820000), // выручка за период
		},
	}
	svc := NewService(repo, fixedTime{testNow}, nopLogger{})

	stats, err := svc.GetStats(context.Background(), "biz-1", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(11), stats.TotalToday)
	assert.Equal(t, int64(2), stats.PendingToday)
	assert.Equal(t, int64(5), stats.ConfirmedToday)
	assert.Equal(t, int64(3), stats.CompletedToday)
	assert.Equal(t, int64(1), stats.CancelledToday)
	assert.True(t, stats.RevenueToday.Equal(decimal.NewFromInt(45000)))
	assert.True(t, stats.RevenueRange.Equal(decimal.NewFromInt(820000)))
	assert.True(t, stats.Date.Equal(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)))
}

func TestGetStats_DefaultRangeIsLast30Days(t *testing.T) {
	repo := &fakeRepo{counts: map[domain.AppointmentStatus]int64{}}
	svc := NewService(repo, fixedTime{testNow}, nopLogger{})

	stats, err := svc.GetStats(context.Background(), "biz-1", nil, nil)
	require.NoError(t, err)

	dayStart := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.True(t, stats.RangeFrom.Equal(dayStart.AddDate(0, 0, -30)))
	assert.True(t, stats.RangeTo.Equal(dayStart.Add(24*time.Hour-time.Millisecond)))

	// Второй вызов выручки идет по периоду
	require.Len(t, repo.revenueCalls, 2)
	assert.True(t, repo.revenueCalls[1].from.Equal(stats.RangeFrom))
	assert.True(t, repo.revenueCalls[1].to.Equal(stats.RangeTo))
}

func TestGetStats_ExplicitRangeUsed(t *testing.T) {
	repo := &fakeRepo{counts: map[domain.AppointmentStatus]int64{}}
	svc := NewService(repo, fixedTime{testNow}, nopLogger{})

	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)
	stats, err := svc.GetStats(context.Background(), "biz-1", &from, &to)
	require.NoError(t, err)

	assert.True(t, stats.RangeFrom.Equal(from))
	assert.True(t, stats.RangeTo.Equal(to))
}

func TestGetStats_RepositoryError(t *testing.T) {
	repo := &fakeRepo{countsErr: errors.New("relation does not exist")}
	svc := NewService(repo, fixedTime{testNow}, nopLogger{})

	_, err := svc.GetStats(context.Background(), "biz-1", nil, nil)
	require.ErrorIs(t, err, ErrInternal)
}

func TestGetProductivity_DefaultsToToday(t *testing.T) {
	repo := &fakeRepo{productivity: []*domain.ManicuristProductivity{
		{ManicuristID: "m1", CompletedCount: 4, Revenue: decimal.NewFromInt(60000)},
	}}
	svc := NewService(repo, fixedTime{testNow}, nopLogger{})

	rows, err := svc.GetProductivity(context.Background(), "biz-1", nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	dayStart := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	assert.True(t, repo.productivityFrom.Equal(dayStart))
	assert.True(t, repo.productivityTo.Equal(dayStart.Add(24*time.Hour-time.Millisecond)))
	assert.Equal(t, int64(4), rows[0].CompletedCount)
}
