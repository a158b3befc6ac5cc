package get_next_available_slots

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

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeManicurists struct {
	active    []*domain.Manicurist
	getErr    error
	schedules map[string]*domain.Schedule // ключ manicuristID
	blocked   map[string][]*domain.BlockedTime
}

func (f *fakeManicurists) GetByID(ctx context.Context, id string) (*domain.Manicurist, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &domain.Manicurist{ID: id, IsActive: true}, nil
}

func (f *fakeManicurists) ListActive(ctx context.Context, businessID *string) ([]*domain.Manicurist, error) {
	return f.active, nil
}

func (f *fakeManicurists) GetScheduleForDay(ctx context.Context, manicuristID string, dayOfWeek int) (*domain.Schedule, error) {
	return f.schedules[manicuristID], nil
}

func (f *fakeManicurists) ListBlockedBetween(ctx context.Context, manicuristID string, from, to time.Time) ([]*domain.BlockedTime, error) {
	return f.blocked[manicuristID], nil
}

type fakeAppointments struct {
	byManicurist map[string][]*domain.Appointment
}

func (f *fakeAppointments) ListActiveByManicuristBetween(ctx context.Context, manicuristID string, from, to time.Time) ([]*domain.Appointment, error) {
	return f.byManicurist[manicuristID], nil
}

func workingDay(manicuristID string, from, to types.TimeString) *domain.Schedule {
	return &domain.Schedule{
		ManicuristID: manicuristID,
		StartTime:    from,
		EndTime:      to,
		IsActive:     true,
	}
}

// Четверг, чтобы расписание действовало на день поиска
var searchNow = time.Date(2026, 3, 5, 8, 0, 0, 0, time.UTC)

func newTestUseCase(manicurists *fakeManicurists, appointments *fakeAppointments, now time.Time) *UseCase {
	uc := NewUseCase(manicurists, appointments, nopLogger{})
	uc.timeProvider = fixedTime{now}
	return uc
}

func TestExecute_ReturnsEarliestSlotsFirst(t *testing.T) {
	manicurists := &fakeManicurists{
		schedules: map[string]*domain.Schedule{
			"m1": workingDay("m1", "10:00", "18:00"),
			"m2": workingDay("m2", "09:00", "18:00"),
		},
	}
	uc := newTestUseCase(manicurists, &fakeAppointments{}, searchNow)

	resp, err := uc.Execute(context.Background(), &Request{
		ManicuristIDs:   []string{"m1", "m2"},
		DurationMinutes: 60,
		Limit:           3,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)

	// Мастер с более ранним началом дня идет первым
	assert.Equal(t, "m2", resp.Slots[0].ManicuristID)
	assert.True(t, resp.Slots[0].StartAt.Equal(time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)))
	assert.Equal(t, "m2", resp.Slots[1].ManicuristID)
	assert.True(t, resp.Slots[1].StartAt.Equal(time.Date(2026, 3, 5, 9, 15, 0, 0, time.UTC)))
	assert.True(t, resp.Slots[2].StartAt.Equal(time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC)))
}

func TestExecute_TiesOrderedByManicuristID(t *testing.T) {
	manicurists := &fakeManicurists{
		schedules: map[string]*domain.Schedule{
			"m1": workingDay("m1", "09:00", "18:00"),
			"m2": workingDay("m2", "09:00", "18:00"),
		},
	}
	uc := newTestUseCase(manicurists, &fakeAppointments{}, searchNow)

	resp, err := uc.Execute(context.Background(), &Request{
		ManicuristIDs:   []string{"m2", "m1"},
		DurationMinutes: 60,
		Limit:           2,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)

	assert.Equal(t, "m1", resp.Slots[0].ManicuristID)
	assert.Equal(t, "m2", resp.Slots[1].ManicuristID)
	assert.True(t, resp.Slots[0].StartAt.Equal(resp.Slots[1].StartAt))
}

func TestExecute_StartRoundedUpToGrid(t *testing.T) {
	manicurists := &fakeManicurists{
		schedules: map[string]*domain.Schedule{
			"m1": workingDay("m1", "09:00", "18:00"),
		},
	}
	now := time.Date(2026, 3, 5, 10, 7, 0, 0, time.UTC)
	uc := newTestUseCase(manicurists, &fakeAppointments{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		ManicuristIDs:   []string{"m1"},
		DurationMinutes: 30,
		Limit:           1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.True(t, resp.Slots[0].StartAt.Equal(time.Date(2026, 3, 5, 10, 15, 0, 0, time.UTC)))
}

func TestExecute_SkipsBusyAndBlockedIntervals(t *testing.T) {
	busyStart := time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC)
	manicurists := &fakeManicurists{
		schedules: map[string]*domain.Schedule{
			"m1": workingDay("m1", "09:00", "11:00"),
		},
		blocked: map[string][]*domain.BlockedTime{
			"m1": {{
				ManicuristID: "m1",
				StartAt:      time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC),
				EndAt:        time.Date(2026, 3, 5, 10, 30, 0, 0, time.UTC),
			}},
		},
	}
	appointments := &fakeAppointments{
		byManicurist: map[string][]*domain.Appointment{
			"m1": {{
				ID:      "appt-1",
				StartAt: busyStart,
				EndAt:   busyStart.Add(30 * time.Minute),
				Status:  domain.StatusConfirmed,
			}},
		},
	}
	uc := newTestUseCase(manicurists, appointments, searchNow)

	resp, err := uc.Execute(context.Background(), &Request{
		ManicuristIDs:   []string{"m1"},
		DurationMinutes: 30,
		Limit:           10,
	})
	require.NoError(t, err)

	// 09:00-09:30 занято записью, 10:00-10:30 перекрыто блокировкой
	starts := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		starts = append(starts, s.StartAt.Format("15:04"))
	}
	assert.Equal(t, []string{"09:30", "10:30"}, starts)
}

func TestExecute_SearchesFollowingDays(t *testing.T) {
	// Расписание действует каждый день; записи полностью занимают четверг
	fullDay := []*domain.Appointment{{
		ID:      "appt-1",
		StartAt: time.Date(2026, 3, 5, 9, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 3, 5, 18, 0, 0, 0, time.UTC),
		Status:  domain.StatusConfirmed,
	}}
	manicurists := &fakeManicurists{
		schedules: map[string]*domain.Schedule{
			"m1": workingDay("m1", "09:00", "18:00"),
		},
	}
	appointments := &fakeAppointments{
		byManicurist: map[string][]*domain.Appointment{"m1": fullDay},
	}
	uc := newTestUseCase(manicurists, appointments, searchNow)

	resp, err := uc.Execute(context.Background(), &Request{
		ManicuristIDs:   []string{"m1"},
		DurationMinutes: 60,
		Limit:           1,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)

	// Первый свободный слот на следующий день.
	// Фейковый репозиторий возвращает ту же занятость для любой даты,
	// но запись четверга не пересекается с интервалами пятницы
	assert.True(t, resp.Slots[0].StartAt.Equal(time.Date(2026, 3, 6, 9, 0, 0, 0, time.UTC)))
}

func TestExecute_DefaultLimitApplied(t *testing.T) {
	manicurists := &fakeManicurists{
		schedules: map[string]*domain.Schedule{
			"m1": workingDay("m1", "09:00", "18:00"),
		},
	}
	uc := newTestUseCase(manicurists, &fakeAppointments{}, searchNow)

	resp, err := uc.Execute(context.Background(), &Request{
		ManicuristIDs:   []string{"m1"},
		DurationMinutes: 30,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, domain.DefaultNextSlotsLimit)
}

func TestExecute_ResolvesAllActiveManicurists(t *testing.T) {
	manicurists := &fakeManicurists{
		active: []*domain.Manicurist{{ID: "m1"}, {ID: "m2"}},
		schedules: map[string]*domain.Schedule{
			"m1": workingDay("m1", "09:00", "10:00"),
			"m2": workingDay("m2", "09:00", "10:00"),
		},
	}
	uc := newTestUseCase(manicurists, &fakeAppointments{}, searchNow)

	resp, err := uc.Execute(context.Background(), &Request{
		DurationMinutes: 60,
		Limit:           10,
	})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, "m1", resp.Slots[0].ManicuristID)
	assert.Equal(t, "m2", resp.Slots[1].ManicuristID)
}

func TestExecute_UnknownManicurist(t *testing.T) {
	manicurists := &fakeManicurists{getErr: manicuristRepo.ErrManicuristNotFound}
	uc := newTestUseCase(manicurists, &fakeAppointments{}, searchNow)

	_, err := uc.Execute(context.Background(), &Request{
		ManicuristIDs:   []string{"ghost"},
		DurationMinutes: 60,
	})
	require.ErrorIs(t, err, ErrManicuristNotFound)
}

func TestExecute_InvalidDuration(t *testing.T) {
	uc := newTestUseCase(&fakeManicurists{}, &fakeAppointments{}, searchNow)

	_, err := uc.Execute(context.Background(), &Request{DurationMinutes: 3})
	require.ErrorIs(t, err, ErrInvalidDuration)
}

func TestRoundUpToStep(t *testing.T) {
	base := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)

	assert.True(t, roundUpToStep(base).Equal(base))
	assert.True(t, roundUpToStep(base.Add(time.Minute)).Equal(base.Add(15*time.Minute)))
	assert.True(t, roundUpToStep(base.Add(14*time.Minute+59*time.Second)).Equal(base.Add(15*time.Minute)))
	assert.True(t, roundUpToStep(base.Add(15*time.Minute)).Equal(base.Add(15*time.Minute)))
}
