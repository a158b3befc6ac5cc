package manicurists

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	manicuristRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/manicurist"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type passthroughTx struct{ calls int }

func (p *passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	p.calls++
	return fn(ctx)
}

type fakeRepo struct {
	manicurist  *domain.Manicurist
	getErr      error
	replaced    []domain.Schedule
	blocked     *domain.BlockedTime
	deletedID   string
	deleteErr   error
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*domain.Manicurist, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.manicurist, nil
}

func (f *fakeRepo) ListActive(ctx context.Context, businessID *string) ([]*domain.Manicurist, error) {
	return []*domain.Manicurist{f.manicurist}, nil
}

func (f *fakeRepo) ListSchedules(ctx context.Context, manicuristID string) ([]*domain.Schedule, error) {
	return []*domain.Schedule{}, nil
}

func (f *fakeRepo) ReplaceWeeklySchedule(ctx context.Context, manicuristID string, schedules []domain.Schedule) error {
	f.replaced = schedules
	return nil
}

func (f *fakeRepo) CreateBlockedTime(ctx context.Context, block *domain.BlockedTime) (*domain.BlockedTime, error) {
	f.blocked = block
	out := *block
	out.ID = "block-1"
	return &out, nil
}

func (f *fakeRepo) DeleteBlockedTime(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedID = id
	return nil
}

func (f *fakeRepo) ListBlockedBetween(ctx context.Context, manicuristID string, from, to time.Time) ([]*domain.BlockedTime, error) {
	return nil, nil
}

func fullWeek() []domain.Schedule {
	week := make([]domain.Schedule, 0, 7)
	for day := 0; day < 7; day++ {
		week = append(week, domain.Schedule{
			DayOfWeek: day,
			StartTime: types.TimeString("09:00"),
			EndTime:   types.TimeString("18:00"),
			IsActive:  day != 0, // воскресенье выходной
		})
	}
	return week
}

func newTestService(repo *fakeRepo, tx *passthroughTx) *Service {
	return NewService(repo, tx, nopLogger{})
}

func TestUpdateWeeklySchedule_Success(t *testing.T) {
	repo := &fakeRepo{manicurist: &domain.Manicurist{ID: "man-1"}}
	tx := &passthroughTx{}
	svc := newTestService(repo, tx)

	require.NoError(t, svc.UpdateWeeklySchedule(context.Background(), "man-1", fullWeek()))

	assert.Equal(t, 1, tx.calls)
	require.Len(t, repo.replaced, 7)
	for _, sc := range repo.replaced {
		assert.Equal(t, "man-1", sc.ManicuristID)
	}
}

func TestUpdateWeeklySchedule_RequiresSevenDays(t *testing.T) {
	svc := newTestService(&fakeRepo{manicurist: &domain.Manicurist{ID: "man-1"}}, &passthroughTx{})

	err := svc.UpdateWeeklySchedule(context.Background(), "man-1", fullWeek()[:5])
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestUpdateWeeklySchedule_DuplicateDayRejected(t *testing.T) {
	week := fullWeek()
	week[6].DayOfWeek = 3
	svc := newTestService(&fakeRepo{manicurist: &domain.Manicurist{ID: "man-1"}}, &passthroughTx{})

	err := svc.UpdateWeeklySchedule(context.Background(), "man-1", week)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestUpdateWeeklySchedule_InvalidRangeRejected(t *testing.T) {
	week := fullWeek()
	week[2].StartTime = types.TimeString("19:00") // позже конца
	svc := newTestService(&fakeRepo{manicurist: &domain.Manicurist{ID: "man-1"}}, &passthroughTx{})

	err := svc.UpdateWeeklySchedule(context.Background(), "man-1", week)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestUpdateWeeklySchedule_InactiveDayAllowsEmptyTimes(t *testing.T) {
	week := fullWeek()
	week[0].StartTime = ""
	week[0].EndTime = ""
	repo := &fakeRepo{manicurist: &domain.Manicurist{ID: "man-1"}}
	svc := newTestService(repo, &passthroughTx{})

	require.NoError(t, svc.UpdateWeeklySchedule(context.Background(), "man-1", week))
}

func TestUpdateWeeklySchedule_UnknownManicurist(t *testing.T) {
	repo := &fakeRepo{getErr: manicuristRepo.ErrManicuristNotFound}
	svc := newTestService(repo, &passthroughTx{})

	err := svc.UpdateWeeklySchedule(context.Background(), "man-x", fullWeek())
	assert.ErrorIs(t, err, ErrManicuristNotFound)
}

func TestCreateBlockedTime_InvalidInterval(t *testing.T) {
	svc := newTestService(&fakeRepo{manicurist: &domain.Manicurist{ID: "man-1"}}, &passthroughTx{})

	start := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	_, err := svc.CreateBlockedTime(context.Background(), "man-1", start, start, nil)
	assert.ErrorIs(t, err, ErrInvalidBlockedTime)
}

func TestCreateBlockedTime_Success(t *testing.T) {
	repo := &fakeRepo{manicurist: &domain.Manicurist{ID: "man-1"}}
	svc := newTestService(repo, &passthroughTx{})

	start := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	reason := "vacaciones"
	created, err := svc.CreateBlockedTime(context.Background(), "man-1", start, start.Add(2*time.Hour), &reason)
	require.NoError(t, err)

	assert.Equal(t, "block-1", created.ID)
	assert.Equal(t, "man-1", repo.blocked.ManicuristID)
	require.NotNil(t, repo.blocked.Reason)
	assert.Equal(t, "vacaciones", *repo.blocked.Reason)
}

func TestDeleteBlockedTime_NotFound(t *testing.T) {
	repo := &fakeRepo{deleteErr: manicuristRepo.ErrBlockedTimeNotFound}
	svc := newTestService(repo, &passthroughTx{})

	err := svc.DeleteBlockedTime(context.Background(), "block-x")
	assert.ErrorIs(t, err, ErrBlockedTimeNotFound)
}
