package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeManicuristRepo struct {
	manicurist *domain.Manicurist
	schedule   *domain.Schedule
	blocked    []*domain.BlockedTime
	getErr     error
}

func (f *fakeManicuristRepo) GetByID(ctx context.Context, id string) (*domain.Manicurist, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.manicurist, nil
}

func (f *fakeManicuristRepo) GetScheduleForDay(ctx context.Context, manicuristID string, dayOfWeek int) (*domain.Schedule, error) {
	return f.schedule, nil
}

func (f *fakeManicuristRepo) ListBlockedBetween(ctx context.Context, manicuristID string, from, to time.Time) ([]*domain.BlockedTime, error) {
	return f.blocked, nil
}

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
}

func (f *fakeAppointmentRepo) ListActiveByManicuristBetween(ctx context.Context, manicuristID string, from, to time.Time) ([]*domain.Appointment, error) {
	return f.appointments, nil
}

func workSchedule(day int, start, end string) *domain.Schedule {
	return &domain.Schedule{
		ID:           "sched-1",
		ManicuristID: "man-1",
		DayOfWeek:    day,
		StartTime:    types.TimeString(start),
		EndTime:      types.TimeString(end),
		IsActive:     true,
	}
}

// Понедельник 2026-03-02, рабочее окно 09:00-18:00
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func newTestUseCase(mRepo *fakeManicuristRepo, aRepo *fakeAppointmentRepo, now time.Time) *UseCase {
	uc := NewUseCase(mRepo, aRepo, nopLogger{})
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestExecute_FullDayGrid(t *testing.T) {
	mRepo := &fakeManicuristRepo{
		manicurist: &domain.Manicurist{ID: "man-1", IsActive: true},
		schedule:   workSchedule(1, "09:00", "18:00"),
	}
	uc := newTestUseCase(mRepo, &fakeAppointmentRepo{}, monday.Add(-24*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{
		ManicuristID:    "man-1",
		Date:            monday,
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	// 09:00 .. 17:00 с шагом 15 минут: последний старт, влезающий до 18:00
	require.Len(t, resp.Slots, 33)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), resp.Slots[0].StartAt)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), resp.Slots[0].EndAt)
	assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), resp.Slots[len(resp.Slots)-1].StartAt)
}

func TestExecute_BusyAppointmentExcluded(t *testing.T) {
	mRepo := &fakeManicuristRepo{
		manicurist: &domain.Manicurist{ID: "man-1", IsActive: true},
		schedule:   workSchedule(1, "09:00", "12:00"),
	}
	aRepo := &fakeAppointmentRepo{appointments: []*domain.Appointment{{
		ID:      "appt-1",
		StartAt: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
		Status:  domain.StatusConfirmed,
	}}}
	uc := newTestUseCase(mRepo, aRepo, monday.Add(-24*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{
		ManicuristID:    "man-1",
		Date:            monday,
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	// Свободны только 09:00 (граничит с записью) и 11:00 (начинается сразу после)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), resp.Slots[0].StartAt)
	assert.Equal(t, time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC), resp.Slots[1].StartAt)
}

func TestExecute_BlockedTimeExcluded(t *testing.T) {
	mRepo := &fakeManicuristRepo{
		manicurist: &domain.Manicurist{ID: "man-1", IsActive: true},
		schedule:   workSchedule(1, "09:00", "12:00"),
		blocked: []*domain.BlockedTime{{
			ID:      "block-1",
			StartAt: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
		}},
	}
	uc := newTestUseCase(mRepo, &fakeAppointmentRepo{}, monday.Add(-24*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{
		ManicuristID:    "man-1",
		Date:            monday,
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 1)
	assert.Equal(t, time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC), resp.Slots[0].StartAt)
}

func TestExecute_DayOffReturnsEmpty(t *testing.T) {
	mRepo := &fakeManicuristRepo{
		manicurist: &domain.Manicurist{ID: "man-1", IsActive: true},
		schedule:   nil,
	}
	uc := newTestUseCase(mRepo, &fakeAppointmentRepo{}, monday.Add(-24*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{
		ManicuristID:    "man-1",
		Date:            monday,
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_SameDayPastSlotsSkipped(t *testing.T) {
	mRepo := &fakeManicuristRepo{
		manicurist: &domain.Manicurist{ID: "man-1", IsActive: true},
		schedule:   workSchedule(1, "09:00", "18:00"),
	}
	// Сейчас понедельник 16:30: слоты до этого момента не предлагаются
	now := time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC)
	uc := newTestUseCase(mRepo, &fakeAppointmentRepo{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ManicuristID:    "man-1",
		Date:            monday,
		DurationMinutes: 60,
	})
	require.NoError(t, err)

	// Остаются 16:30 (начинается ровно сейчас), 16:45 и 17:00
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, time.Date(2026, 3, 2, 16, 30, 0, 0, time.UTC), resp.Slots[0].StartAt)
	assert.Equal(t, time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC), resp.Slots[2].StartAt)
}

func TestExecute_InvalidDuration(t *testing.T) {
	uc := newTestUseCase(&fakeManicuristRepo{}, &fakeAppointmentRepo{}, monday)

	_, err := uc.Execute(context.Background(), &Request{
		ManicuristID:    "man-1",
		Date:            monday,
		DurationMinutes: 3,
	})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecute_DurationLongerThanBand(t *testing.T) {
	mRepo := &fakeManicuristRepo{
		manicurist: &domain.Manicurist{ID: "man-1", IsActive: true},
		schedule:   workSchedule(1, "09:00", "10:00"),
	}
	uc := newTestUseCase(mRepo, &fakeAppointmentRepo{}, monday.Add(-24*time.Hour))

	resp, err := uc.Execute(context.Background(), &Request{
		ManicuristID:    "man-1",
		Date:            monday,
		DurationMinutes: 120,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}
