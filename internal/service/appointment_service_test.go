package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/columnamoda/store_bot/internal/model"
)

type fakeAppointmentStore struct {
	appointments map[int64]*model.Appointment

	created  *model.Appointment
	listFrom time.Time
	listTo   time.Time
}

func (f *fakeAppointmentStore) Create(_ context.Context, appointment *model.Appointment) error {
	appointment.ID = 1
	f.created = appointment
	return nil
}

func (f *fakeAppointmentStore) ListByUser(_ context.Context, _ int64) ([]*model.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentStore) ListBetween(_ context.Context, from, to time.Time) ([]*model.Appointment, error) {
	f.listFrom = from
	f.listTo = to
	return nil, nil
}

func (f *fakeAppointmentStore) GetByID(_ context.Context, id int64) (*model.Appointment, error) {
	return f.appointments[id], nil
}

func (f *fakeAppointmentStore) UpdateStatus(_ context.Context, id int64, status model.AppointmentStatus) error {
	appointment, ok := f.appointments[id]
	if !ok {
		return assert.AnError
	}
	appointment.Status = status
	return nil
}

type fakeUserSource struct {
	users map[int64]*model.User
}

func (f *fakeUserSource) GetByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	return f.users[telegramID], nil
}

func newAppointmentService(store *fakeAppointmentStore, users *fakeUserSource) *AppointmentService {
	return NewAppointmentService(store, users, zap.NewNop())
}

func TestCreateAppointmentSetsPendingAndCode(t *testing.T) {
	store := &fakeAppointmentStore{}
	users := &fakeUserSource{users: map[int64]*model.User{
		100: {ID: 1, TelegramID: 100},
	}}
	svc := newAppointmentService(store, users)

	date := time.Date(2026, 9, 4, 17, 30, 0, 0, time.UTC)
	appointment, err := svc.CreateAppointment(context.Background(), 100, date, nil)
	require.NoError(t, err)

	assert.Equal(t, model.AppointmentPending, appointment.Status)
	assert.Equal(t, int64(1), appointment.UserID)
	assert.NotEmpty(t, appointment.Code)
	assert.Equal(t, appointment, store.created)
}

func TestCreateAppointmentRequiresRegistration(t *testing.T) {
	svc := newAppointmentService(&fakeAppointmentStore{}, &fakeUserSource{})

	_, err := svc.CreateAppointment(context.Background(), 100, time.Now(), nil)
	assert.Error(t, err)
}

func TestCancelOwnUnknownAppointment(t *testing.T) {
	store := &fakeAppointmentStore{appointments: map[int64]*model.Appointment{}}
	users := &fakeUserSource{users: map[int64]*model.User{
		100: {ID: 1, TelegramID: 100},
	}}
	svc := newAppointmentService(store, users)

	_, err := svc.CancelOwn(context.Background(), 100, 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCancelOwnRejectsForeignAppointment(t *testing.T) {
	store := &fakeAppointmentStore{appointments: map[int64]*model.Appointment{
		5: {ID: 5, UserID: 2, Status: model.AppointmentPending},
	}}
	users := &fakeUserSource{users: map[int64]*model.User{
		100: {ID: 1, TelegramID: 100},
	}}
	svc := newAppointmentService(store, users)

	_, err := svc.CancelOwn(context.Background(), 100, 5)
	require.Error(t, err)
	assert.Equal(t, model.AppointmentPending, store.appointments[5].Status)
}

func TestCancelOwnCancelsOwnAppointment(t *testing.T) {
	store := &fakeAppointmentStore{appointments: map[int64]*model.Appointment{
		5: {ID: 5, UserID: 1, Status: model.AppointmentPending},
	}}
	users := &fakeUserSource{users: map[int64]*model.User{
		100: {ID: 1, TelegramID: 100},
	}}
	svc := newAppointmentService(store, users)

	appointment, err := svc.CancelOwn(context.Background(), 100, 5)
	require.NoError(t, err)
	assert.Equal(t, model.AppointmentCancelled, appointment.Status)
}

func TestListWeekQueriesFromMonday(t *testing.T) {
	store := &fakeAppointmentStore{}
	svc := newAppointmentService(store, &fakeUserSource{})

	wednesday := time.Date(2026, 8, 26, 15, 45, 0, 0, time.UTC)
	_, monday, err := svc.ListWeek(context.Background(), wednesday)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), monday)
	assert.Equal(t, monday, store.listFrom)
	assert.Equal(t, monday.AddDate(0, 0, 7), store.listTo)
}

func TestWeekStartSundayBelongsToPreviousMonday(t *testing.T) {
	sunday := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC), WeekStart(sunday))
}
