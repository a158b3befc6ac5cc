package availability

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

type fakeApptRepo struct {
	manicuristOverlap *domain.Appointment
	clientOverlap     *domain.Appointment
	gotExcludeID      *string
}

func (f *fakeApptRepo) FindOverlapForManicurist(ctx context.Context, manicuristID string, start, end time.Time, excludeID *string) (*domain.Appointment, error) {
	f.gotExcludeID = excludeID
	return f.manicuristOverlap, nil
}

func (f *fakeApptRepo) FindOverlapForClient(ctx context.Context, clientID string, start, end time.Time, excludeID *string) (*domain.Appointment, error) {
	return f.clientOverlap, nil
}

type fakeManRepo struct {
	schedule       *domain.Schedule
	blockedOverlap *domain.BlockedTime
	blockedCalled  bool
}

func (f *fakeManRepo) GetScheduleForDay(ctx context.Context, manicuristID string, dayOfWeek int) (*domain.Schedule, error) {
	return f.schedule, nil
}

func (f *fakeManRepo) FindBlockedOverlap(ctx context.Context, manicuristID string, start, end time.Time) (*domain.BlockedTime, error) {
	f.blockedCalled = true
	return f.blockedOverlap, nil
}

func activeSchedule() *domain.Schedule {
	return &domain.Schedule{
		DayOfWeek: 1,
		StartTime: types.TimeString("09:00"),
		EndTime:   types.TimeString("18:00"),
		IsActive:  true,
	}
}

// Понедельник
var slotStart = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func TestIsSlotAvailable_Free(t *testing.T) {
	svc := NewService(&fakeApptRepo{}, &fakeManRepo{schedule: activeSchedule()}, nopLogger{})

	ok, err := svc.IsSlotAvailable(context.Background(), "man-1", slotStart, slotStart.Add(time.Hour), nil)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsSlotAvailable_DayOff(t *testing.T) {
	manRepo := &fakeManRepo{schedule: nil}
	svc := NewService(&fakeApptRepo{}, manRepo, nopLogger{})

	ok, err := svc.IsSlotAvailable(context.Background(), "man-1", slotStart, slotStart.Add(time.Hour), nil)
	require.NoError(t, err)
	assert.False(t, ok)
	// График не найден: остальные проверки не выполняются
	assert.False(t, manRepo.blockedCalled)
}

func TestIsSlotAvailable_OutsideWorkingHours(t *testing.T) {
	manRepo := &fakeManRepo{schedule: activeSchedule()}
	svc := NewService(&fakeApptRepo{}, manRepo, nopLogger{})

	// 17:30 + 60 минут выходит за 18:00
	lateStart := time.Date(2026, 3, 2, 17, 30, 0, 0, time.UTC)
	ok, err := svc.IsSlotAvailable(context.Background(), "man-1", lateStart, lateStart.Add(time.Hour), nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, manRepo.blockedCalled)
}

func TestIsSlotAvailable_BlockedTime(t *testing.T) {
	manRepo := &fakeManRepo{
		schedule:       activeSchedule(),
		blockedOverlap: &domain.BlockedTime{ID: "block-1"},
	}
	svc := NewService(&fakeApptRepo{}, manRepo, nopLogger{})

	ok, err := svc.IsSlotAvailable(context.Background(), "man-1", slotStart, slotStart.Add(time.Hour), nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsSlotAvailable_AppointmentOverlap(t *testing.T) {
	apptRepo := &fakeApptRepo{manicuristOverlap: &domain.Appointment{ID: "appt-9"}}
	svc := NewService(apptRepo, &fakeManRepo{schedule: activeSchedule()}, nopLogger{})

	ok, err := svc.IsSlotAvailable(context.Background(), "man-1", slotStart, slotStart.Add(time.Hour), nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsSlotAvailable_ExcludeIDPropagated(t *testing.T) {
	apptRepo := &fakeApptRepo{}
	svc := NewService(apptRepo, &fakeManRepo{schedule: activeSchedule()}, nopLogger{})

	exclude := "appt-self"
	_, err := svc.IsSlotAvailable(context.Background(), "man-1", slotStart, slotStart.Add(time.Hour), &exclude)
	require.NoError(t, err)

	require.NotNil(t, apptRepo.gotExcludeID)
	assert.Equal(t, "appt-self", *apptRepo.gotExcludeID)
}

func TestClientOverlappingAppointment(t *testing.T) {
	apptRepo := &fakeApptRepo{clientOverlap: &domain.Appointment{ID: "appt-7"}}
	svc := NewService(apptRepo, &fakeManRepo{}, nopLogger{})

	overlap, err := svc.ClientOverlappingAppointment(context.Background(), "cli-1", slotStart, slotStart.Add(time.Hour), nil)
	require.NoError(t, err)
	require.NotNil(t, overlap)
	assert.Equal(t, "appt-7", overlap.ID)
}
