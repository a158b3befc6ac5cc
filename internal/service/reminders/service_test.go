package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

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

type enqueuedJob struct {
	jobID         string
	appointmentID string
	ntype         domain.NotificationType
	runAt         time.Time
}

type fakeQueue struct {
	enqueued   []enqueuedJob
	removed    []string
	enqueueErr error
}

func (f *fakeQueue) Enqueue(ctx context.Context, jobID, appointmentID string, ntype domain.NotificationType, runAt time.Time) (*domain.NotificationJob, error) {
	if f.enqueueErr != nil {
		return nil, f.enqueueErr
	}
	f.enqueued = append(f.enqueued, enqueuedJob{jobID: jobID, appointmentID: appointmentID, ntype: ntype, runAt: runAt})
	return &domain.NotificationJob{JobID: jobID}, nil
}

func (f *fakeQueue) Remove(ctx context.Context, jobID string) error {
	f.removed = append(f.removed, jobID)
	return nil
}

type fakeAppointmentRepo struct {
	needingReminder []*domain.Appointment
	requestedFrom   time.Time
	requestedTo     time.Time
}

func (f *fakeAppointmentRepo) ListNeedingReminder(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	f.requestedFrom = from
	f.requestedTo = to
	return f.needingReminder, nil
}

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func TestScheduleReminder_LongLead(t *testing.T) {
	queue := &fakeQueue{}
	svc := NewService(queue, &fakeAppointmentRepo{}, fixedTime{now: testNow}, nopLogger{})

	// До записи 48 часов: напоминание за 24 часа до начала
	startAt := testNow.Add(48 * time.Hour)
	require.NoError(t, svc.ScheduleReminder(context.Background(), "appt-1", startAt))

	require.Len(t, queue.enqueued, 1)
	job := queue.enqueued[0]
	assert.Equal(t, "reminder-appt-1", job.jobID)
	assert.Equal(t, domain.NotificationReminder24h, job.ntype)
	assert.Equal(t, startAt.Add(-domain.ReminderLeadLong), job.runAt)
}

func TestScheduleReminder_ShortLead(t *testing.T) {
	queue := &fakeQueue{}
	svc := NewService(queue, &fakeAppointmentRepo{}, fixedTime{now: testNow}, nopLogger{})

	// До записи 10 часов: напоминание за час, то есть через 9 часов
	startAt := testNow.Add(10 * time.Hour)
	require.NoError(t, svc.ScheduleReminder(context.Background(), "appt-1", startAt))

	require.Len(t, queue.enqueued, 1)
	assert.Equal(t, testNow.Add(9*time.Hour), queue.enqueued[0].runAt)
}

func TestScheduleReminder_TooLateSkipped(t *testing.T) {
	queue := &fakeQueue{}
	svc := NewService(queue, &fakeAppointmentRepo{}, fixedTime{now: testNow}, nopLogger{})

	// До записи 30 минут: момент напоминания уже прошел, задание не ставится
	require.NoError(t, svc.ScheduleReminder(context.Background(), "appt-1", testNow.Add(30*time.Minute)))
	assert.Empty(t, queue.enqueued)
}

func TestScheduleReminder_EnqueueError(t *testing.T) {
	queue := &fakeQueue{enqueueErr: errors.New("db down")}
	svc := NewService(queue, &fakeAppointmentRepo{}, fixedTime{now: testNow}, nopLogger{})

	err := svc.ScheduleReminder(context.Background(), "appt-1", testNow.Add(48*time.Hour))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestEnqueueConfirmation_Immediate(t *testing.T) {
	queue := &fakeQueue{}
	svc := NewService(queue, &fakeAppointmentRepo{}, fixedTime{now: testNow}, nopLogger{})

	require.NoError(t, svc.EnqueueConfirmation(context.Background(), "appt-1"))

	require.Len(t, queue.enqueued, 1)
	job := queue.enqueued[0]
	assert.Equal(t, "confirm-appt-1", job.jobID)
	assert.Equal(t, domain.NotificationConfirmation, job.ntype)
	assert.Equal(t, testNow, job.runAt)
}

func TestEnqueueCancellation_RemovesPendingReminder(t *testing.T) {
	queue := &fakeQueue{}
	svc := NewService(queue, &fakeAppointmentRepo{}, fixedTime{now: testNow}, nopLogger{})

	require.NoError(t, svc.EnqueueCancellation(context.Background(), "appt-1"))

	assert.Equal(t, []string{"reminder-appt-1"}, queue.removed)
	require.Len(t, queue.enqueued, 1)
	assert.Equal(t, "cancel-appt-1", queue.enqueued[0].jobID)
	assert.Equal(t, domain.NotificationCancellation, queue.enqueued[0].ntype)
}

func TestReconcileReminders_WindowAndCount(t *testing.T) {
	repo := &fakeAppointmentRepo{needingReminder: []*domain.Appointment{
		{ID: "appt-1", StartAt: testNow.Add(domain.ReminderLeadLong + 10*time.Minute)},
		{ID: "appt-2", StartAt: testNow.Add(domain.ReminderLeadLong + 30*time.Minute)},
	}}
	queue := &fakeQueue{}
	svc := NewService(queue, repo, fixedTime{now: testNow}, nopLogger{})

	scheduled, err := svc.ReconcileReminders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, scheduled)

	assert.Equal(t, testNow.Add(domain.ReminderLeadLong-reconcileWindowBack), repo.requestedFrom)
	assert.Equal(t, testNow.Add(domain.ReminderLeadLong+reconcileWindowForward), repo.requestedTo)
	require.Len(t, queue.enqueued, 2)
	assert.Equal(t, "reminder-appt-1", queue.enqueued[0].jobID)
}
