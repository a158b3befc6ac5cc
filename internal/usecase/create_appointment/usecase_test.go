package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	serviceRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/service"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeAppointments struct {
	created   *domain.Appointment
	createErr error
}

func (f *fakeAppointments) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *appt
	out.ID = "appt-1"
	f.created = &out
	return &out, nil
}

func (f *fakeAppointments) GetDetailsByID(ctx context.Context, id string) (*domain.AppointmentDetails, error) {
	return &domain.AppointmentDetails{
		Appointment: *f.created,
		Client:      domain.ClientSummary{ID: f.created.ClientID, Name: "Valentina", Phone: "+5491155551234"},
		Manicurist:  domain.ManicuristSummary{ID: f.created.ManicuristID, Name: "Sofía"},
		Service:     domain.ServiceSummary{ID: f.created.ServiceID, Name: "Kapping", DurationMinutes: 90},
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

type fakeClients struct{ err error }

func (f *fakeClients) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Client{ID: id}, nil
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
}

func (f *fakeAvailability) IsSlotAvailable(ctx context.Context, manicuristID string, start, end time.Time, excludeID *string) (bool, error) {
	return f.available, nil
}

func (f *fakeAvailability) ClientOverlappingAppointment(ctx context.Context, clientID string, start, end time.Time, excludeID *string) (*domain.Appointment, error) {
	return f.conflict, nil
}

type fakeReminders struct {
	confirmations []string
	reminders     []string
}

func (f *fakeReminders) EnqueueConfirmation(ctx context.Context, appointmentID string) error {
	f.confirmations = append(f.confirmations, appointmentID)
	return nil
}

func (f *fakeReminders) ScheduleReminder(ctx context.Context, appointmentID string, startAt time.Time) error {
	f.reminders = append(f.reminders, appointmentID)
	return nil
}

type passthroughTx struct{}

func (passthroughTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var startAt = time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

func activeService() *domain.Service {
	return &domain.Service{
		ID:              "svc-1",
		DurationMinutes: 90,
		Price:           decimal.NewFromInt(15000),
		IsActive:        true,
	}
}

func validRequest() *Request {
	return &Request{
		BusinessID:   "biz-1",
		ClientID:     "cli-1",
		ManicuristID: "man-1",
		ServiceID:    "svc-1",
		StartAt:      startAt,
	}
}

func newTestUseCase(appts *fakeAppointments, svcs *fakeServices, avail *fakeAvailability, rem *fakeReminders) *UseCase {
	return NewUseCase(appts, svcs, &fakeClients{}, &fakeManicurists{}, avail, rem, passthroughTx{}, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	appts := &fakeAppointments{}
	rem := &fakeReminders{}
	uc := newTestUseCase(appts, &fakeServices{service: activeService()}, &fakeAvailability{available: true}, rem)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "appt-1", resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, startAt.Add(90*time.Minute), resp.EndAt)
	assert.Equal(t, "15000.00", resp.Price)

	// Цена зафиксирована из услуги на момент создания
	assert.True(t, appts.created.Price.Equal(decimal.NewFromInt(15000)))

	// Уведомления поставлены после коммита
	assert.Equal(t, []string{"appt-1"}, rem.confirmations)
	assert.Equal(t, []string{"appt-1"}, rem.reminders)
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	rem := &fakeReminders{}
	uc := newTestUseCase(&fakeAppointments{}, &fakeServices{service: activeService()}, &fakeAvailability{available: false}, rem)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, rem.confirmations)
}

func TestExecute_ClientConflictIncludesRange(t *testing.T) {
	conflict := &domain.Appointment{
		ID:      "appt-other",
		StartAt: startAt.Add(-30 * time.Minute),
		EndAt:   startAt.Add(30 * time.Minute),
	}
	uc := newTestUseCase(&fakeAppointments{}, &fakeServices{service: activeService()},
		&fakeAvailability{available: true, conflict: conflict}, &fakeReminders{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrClientConflict)
	assert.Contains(t, err.Error(), conflict.StartAt.Format(time.RFC3339))
	assert.Contains(t, err.Error(), conflict.EndAt.Format(time.RFC3339))
}

func TestExecute_InactiveServiceRejected(t *testing.T) {
	svc := activeService()
	svc.IsActive = false
	uc := newTestUseCase(&fakeAppointments{}, &fakeServices{service: svc}, &fakeAvailability{available: true}, &fakeReminders{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_UnknownService(t *testing.T) {
	uc := newTestUseCase(&fakeAppointments{}, &fakeServices{err: serviceRepo.ErrServiceNotFound}, &fakeAvailability{available: true}, &fakeReminders{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_SlotRaceTranslated(t *testing.T) {
	// Параллельная транзакция заняла слот: ошибка exclusion constraint
	appts := &fakeAppointments{createErr: &pq.Error{Code: "23P01"}}
	uc := newTestUseCase(appts, &fakeServices{service: activeService()}, &fakeAvailability{available: true}, &fakeReminders{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_SerializationFailureTranslated(t *testing.T) {
	appts := &fakeAppointments{createErr: &pq.Error{Code: "40001"}}
	uc := newTestUseCase(appts, &fakeServices{service: activeService()}, &fakeAvailability{available: true}, &fakeReminders{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_MissingFieldsRejected(t *testing.T) {
	uc := newTestUseCase(&fakeAppointments{}, &fakeServices{service: activeService()}, &fakeAvailability{available: true}, &fakeReminders{})

	req := validRequest()
	req.ClientID = ""
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
