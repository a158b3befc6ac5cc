package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAppointments struct {
	current   *domain.Appointment
	getErr    error
	updateErr error

	updatedFields *appointmentRepo.UpdateFields
}

func (f *fakeAppointments) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.current, nil
}

func (f *fakeAppointments) Update(ctx context.Context, id string, fields appointmentRepo.UpdateFields) (*domain.Appointment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updatedFields = &fields
	out := *f.current
	if fields.Status != nil {
		out.Status = *fields.Status
	}
	if fields.StartAt != nil {
		out.StartAt = *fields.StartAt
	}
	if fields.EndAt != nil {
		out.EndAt = *fields.EndAt
	}
	return &out, nil
}

func (f *fakeAppointments) GetDetailsByID(ctx context.Context, id string) (*domain.AppointmentDetails, error) {
	appt := *f.current
	if f.updatedFields != nil {
		if f.updatedFields.Status != nil {
			appt.Status = *f.updatedFields.Status
		}
		if f.updatedFields.StartAt != nil {
			appt.StartAt = *f.updatedFields.StartAt
		}
		if f.updatedFields.EndAt != nil {
			appt.EndAt = *f.updatedFields.EndAt
		}
	}
	return &domain.AppointmentDetails{
		Appointment: appt,
		Client:      domain.ClientSummary{ID: appt.ClientID, Name: "Valentina", Phone: "+5491155551234"},
		Manicurist:  domain.ManicuristSummary{ID: appt.ManicuristID, Name: "Sofía"},
		Service:     domain.ServiceSummary{ID: appt.ServiceID, Name: "Kapping", DurationMinutes: 90},
	}, nil
}

type fakeServices struct {
	service *domain.Service
	err     error
}

func (f *fakeServices) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.service, nil
}

type fakeManicurists struct{ err error }

func (f *fakeManicurists) GetByID(ctx context.Context, id string) (*domain.Manicurist, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Manicurist{ID: id, IsActive: true}, nil
}

type fakeAvailability struct {
	available bool
	conflict  *domain.Appointment

	slotExcludeID   *string
	clientExcludeID *string
	checkedStart    time.Time
	checkedEnd      time.Time
}

func (f *fakeAvailability) IsSlotAvailable(ctx context.Context, manicuristID string, start, end time.Time, excludeID *string) (bool, error) {
	f.slotExcludeID = excludeID
	f.checkedStart = start
	f.checkedEnd = end
	return f.available, nil
}

func (f *fakeAvailability) ClientOverlappingAppointment(ctx context.Context, clientID string, start, end time.Time, excludeID *string) (*domain.Appointment, error) {
	f.clientExcludeID = excludeID
	return f.conflict, nil
}

type fakeReminders struct {
	rescheduled   []time.Time
	cancellations []string
}

func (f *fakeReminders) ScheduleReminder(ctx context.Context, appointmentID string, startAt time.Time) error {
	f.rescheduled = append(f.rescheduled, startAt)
	return nil
}

func (f *fakeReminders) EnqueueCancellation(ctx context.Context, appointmentID string) error {
	f.cancellations = append(f.cancellations, appointmentID)
	return nil
}

type passthroughTx struct{ calls int }

func (t *passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

func existingAppointment() *domain.Appointment {
	start := time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:           "appt-1",
		BusinessID:   "biz-1",
		ClientID:     "client-1",
		ManicuristID: "manicurist-1",
		ServiceID:    "service-1",
		StartAt:      start,
		EndAt:        start.Add(90 * time.Minute),
		Price:        decimal.NewFromInt(15000),
		Status:       domain.StatusConfirmed,
	}
}

func newTestUseCase(appts *fakeAppointments, services *fakeServices, avail *fakeAvailability, reminders *fakeReminders, tx *passthroughTx) *UseCase {
	return NewUseCase(appts, services, &fakeManicurists{}, avail, reminders, tx, nopLogger{})
}

func TestExecute_TerminalStatusNotEditable(t *testing.T) {
	appt := existingAppointment()
	appt.Status = domain.StatusCompleted
	appts := &fakeAppointments{current: appt}

	uc := newTestUseCase(appts, &fakeServices{}, &fakeAvailability{available: true}, &fakeReminders{}, &passthroughTx{})

	_, err := uc.Execute(context.Background(), &Request{ID: "appt-1", Notes: ptr.Ptr("nuevo diseño")})
	require.ErrorIs(t, err, ErrNotEditable)
	assert.Nil(t, appts.updatedFields)
}

func TestExecute_NotFound(t *testing.T) {
	appts := &fakeAppointments{getErr: appointmentRepo.ErrAppointmentNotFound}

	uc := newTestUseCase(appts, &fakeServices{}, &fakeAvailability{available: true}, &fakeReminders{}, &passthroughTx{})

	_, err := uc.Execute(context.Background(), &Request{ID: "missing"})
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_UnknownStatusRejected(t *testing.T) {
	appts := &fakeAppointments{current: existingAppointment()}

	uc := newTestUseCase(appts, &fakeServices{}, &fakeAvailability{available: true}, &fakeReminders{}, &passthroughTx{})

	_, err := uc.Execute(context.Background(), &Request{ID: "appt-1", Status: ptr.Ptr("POSTPONED")})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_NotesOnlySkipsTransaction(t *testing.T) {
	appts := &fakeAppointments{current: existingAppointment()}
	tx := &passthroughTx{}
	reminders := &fakeReminders{}

	uc := newTestUseCase(appts, &fakeServices{}, &fakeAvailability{available: true}, reminders, tx)

	resp, err := uc.Execute(context.Background(), &Request{ID: "appt-1", Notes: ptr.Ptr("gel semipermanente")})
	require.NoError(t, err)

	assert.Equal(t, 0, tx.calls)
	require.NotNil(t, appts.updatedFields)
	require.NotNil(t, appts.updatedFields.Notes)
	assert.Equal(t, "gel semipermanente", *appts.updatedFields.Notes)
	assert.Nil(t, appts.updatedFields.StartAt)
	assert.Empty(t, reminders.rescheduled)
	assert.Equal(t, "appt-1", resp.ID)
}

func TestExecute_CancellationEnqueuesNotification(t *testing.T) {
	appts := &fakeAppointments{current: existingAppointment()}
	reminders := &fakeReminders{}

	uc := newTestUseCase(appts, &fakeServices{}, &fakeAvailability{available: true}, reminders, &passthroughTx{})

	resp, err := uc.Execute(context.Background(), &Request{ID: "appt-1", Status: ptr.Ptr("CANCELLED")})
	require.NoError(t, err)

	assert.Equal(t, "CANCELLED", resp.Status)
	assert.Equal(t, []string{"appt-1"}, reminders.cancellations)
	assert.Empty(t, reminders.rescheduled)
}

func TestExecute_RescheduleExcludesOwnRow(t *testing.T) {
	appts := &fakeAppointments{current: existingAppointment()}
	avail := &fakeAvailability{available: true}
	reminders := &fakeReminders{}
	tx := &passthroughTx{}

	uc := newTestUseCase(appts, &fakeServices{}, avail, reminders, tx)

	newStart := time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{ID: "appt-1", StartAt: ptr.Ptr(newStart)})
	require.NoError(t, err)

	assert.Equal(t, 1, tx.calls)
	require.NotNil(t, avail.slotExcludeID)
	assert.Equal(t, "appt-1", *avail.slotExcludeID)
	require.NotNil(t, avail.clientExcludeID)
	assert.Equal(t, "appt-1", *avail.clientExcludeID)

	// Длительность сохраняется при переносе без смены услуги
	assert.True(t, resp.StartAt.Equal(newStart))
	assert.True(t, resp.EndAt.Equal(newStart.Add(90*time.Minute)))
	require.Len(t, reminders.rescheduled, 1)
	assert.True(t, reminders.rescheduled[0].Equal(newStart))
}

func TestExecute_ServiceChangeRecomputesDurationAndPrice(t *testing.T) {
	appts := &fakeAppointments{current: existingAppointment()}
	services := &fakeServices{service: &domain.Service{
		ID:              "service-2",
		Name:            "Esmaltado común",
		DurationMinutes: 60,
		Price:           decimal.NewFromInt(20000),
		IsActive:        true,
	}}
	avail := &fakeAvailability{available: true}

	uc := newTestUseCase(appts, services, avail, &fakeReminders{}, &passthroughTx{})

	_, err := uc.Execute(context.Background(), &Request{ID: "appt-1", ServiceID: ptr.Ptr("service-2")})
	require.NoError(t, err)

	require.NotNil(t, appts.updatedFields)
	require.NotNil(t, appts.updatedFields.Price)
	assert.Equal(t, "20000.00", *appts.updatedFields.Price)
	require.NotNil(t, appts.updatedFields.EndAt)
	assert.True(t, appts.updatedFields.EndAt.Equal(existingAppointment().StartAt.Add(60*time.Minute)))
	assert.True(t, avail.checkedEnd.Equal(existingAppointment().StartAt.Add(60*time.Minute)))
}

func TestExecute_InactiveServiceRejected(t *testing.T) {
	appts := &fakeAppointments{current: existingAppointment()}
	services := &fakeServices{service: &domain.Service{ID: "service-2", IsActive: false}}

	uc := newTestUseCase(appts, services, &fakeAvailability{available: true}, &fakeReminders{}, &passthroughTx{})

	_, err := uc.Execute(context.Background(), &Request{ID: "appt-1", ServiceID: ptr.Ptr("service-2")})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	appts := &fakeAppointments{current: existingAppointment()}
	reminders := &fakeReminders{}

	uc := newTestUseCase(appts, &fakeServices{}, &fakeAvailability{available: false}, reminders, &passthroughTx{})

	newStart := time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{ID: "appt-1", StartAt: ptr.Ptr(newStart)})
	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, reminders.rescheduled)
}

func TestExecute_ClientConflictIncludesRange(t *testing.T) {
	appts := &fakeAppointments{current: existingAppointment()}
	conflictStart := time.Date(2026, 3, 6, 10, 30, 0, 0, time.UTC)
	avail := &fakeAvailability{
		available: true,
		conflict: &domain.Appointment{
			ID:      "appt-2",
			StartAt: conflictStart,
			EndAt:   conflictStart.Add(45 * time.Minute),
		},
	}

	uc := newTestUseCase(appts, &fakeServices{}, avail, &fakeReminders{}, &passthroughTx{})

	newStart := time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{ID: "appt-1", StartAt: ptr.Ptr(newStart)})
	require.ErrorIs(t, err, ErrClientConflict)
	assert.Contains(t, err.Error(), conflictStart.Format(time.RFC3339))
	assert.Contains(t, err.Error(), conflictStart.Add(45*time.Minute).Format(time.RFC3339))
}

func TestExecute_SlotRaceTranslated(t *testing.T) {
	appts := &fakeAppointments{
		current:   existingAppointment(),
		updateErr: &pq.Error{Code: "40001"},
	}

	uc := newTestUseCase(appts, &fakeServices{}, &fakeAvailability{available: true}, &fakeReminders{}, &passthroughTx{})

	newStart := time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), &Request{ID: "appt-1", StartAt: ptr.Ptr(newStart)})
	require.ErrorIs(t, err, ErrSlotNotAvailable)
}
