package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ligovsky/booking-slots-service/internal/adapters/out/logger"
	"github.com/ligovsky/booking-slots-service/internal/core/domain"
)

func newTestAdapter(t *testing.T) (*StorageAdapter, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	t.Cleanup(func() { mock.Close() })

	return NewStorageAdapter(mock, logger.NewZapLoggerWith(zap.NewNop())), mock
}

func TestGetAvailabilityWindows(t *testing.T) {
	adapter, mock := newTestAdapter(t)
	customerID := uuid.New()

	rows := pgxmock.NewRows([]string{"customer_id", "day_of_week", "start_time", "end_time"}).
		AddRow(customerID, 1, "09:00:00", "12:00:00").
		AddRow(customerID, 1, "14:00:00", "17:30:00")

	mock.ExpectQuery("SELECT customer_id, day_of_week, start_time::text, end_time::text").
		WithArgs(customerID, 1).
		WillReturnRows(rows)

	windows, err := adapter.GetAvailabilityWindows(context.Background(), customerID, domain.DayOfWeekMonday)
	require.NoError(t, err)

	require.Len(t, windows, 2)
	assert.Equal(t, customerID, windows[0].CustomerID)
	assert.Equal(t, domain.DayOfWeekMonday, windows[0].DayOfWeek)
	assert.Equal(t, 9, windows[0].StartTime.Time.Hour())
	assert.Equal(t, 0, windows[0].StartTime.Time.Minute())
	assert.Equal(t, 12, windows[0].EndTime.Time.Hour())
	assert.Equal(t, 17, windows[1].EndTime.Time.Hour())
	assert.Equal(t, 30, windows[1].EndTime.Time.Minute())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailabilityWindows_Empty(t *testing.T) {
	adapter, mock := newTestAdapter(t)
	customerID := uuid.New()

	mock.ExpectQuery("SELECT customer_id, day_of_week, start_time::text, end_time::text").
		WithArgs(customerID, 0).
		WillReturnRows(pgxmock.NewRows([]string{"customer_id", "day_of_week", "start_time", "end_time"}))

	windows, err := adapter.GetAvailabilityWindows(context.Background(), customerID, domain.DayOfWeekSunday)
	require.NoError(t, err)

	// Пустой результат - не ошибка
	require.NotNil(t, windows)
	assert.Empty(t, windows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAvailabilityWindows_QueryError(t *testing.T) {
	adapter, mock := newTestAdapter(t)
	customerID := uuid.New()

	mock.ExpectQuery("SELECT customer_id, day_of_week, start_time::text, end_time::text").
		WithArgs(customerID, 1).
		WillReturnError(errors.New("connection reset"))

	windows, err := adapter.GetAvailabilityWindows(context.Background(), customerID, domain.DayOfWeekMonday)
	require.Error(t, err)
	assert.Nil(t, windows)
	assert.Contains(t, err.Error(), "get availability windows")
}

func TestGetAvailabilityWindows_BadWallClock(t *testing.T) {
	adapter, mock := newTestAdapter(t)
	customerID := uuid.New()

	rows := pgxmock.NewRows([]string{"customer_id", "day_of_week", "start_time", "end_time"}).
		AddRow(customerID, 1, "not-a-time", "12:00:00")

	mock.ExpectQuery("SELECT customer_id, day_of_week, start_time::text, end_time::text").
		WithArgs(customerID, 1).
		WillReturnRows(rows)

	_, err := adapter.GetAvailabilityWindows(context.Background(), customerID, domain.DayOfWeekMonday)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_time")
}

func TestGetAppointmentsInRange(t *testing.T) {
	adapter, mock := newTestAdapter(t)
	customerID := uuid.New()
	appointmentID := uuid.New()

	from := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 7, 23, 59, 59, 0, time.UTC)
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	rows := pgxmock.NewRows([]string{"id", "customer_id", "start_time", "end_time", "status"}).
		AddRow(appointmentID, customerID, start, end, "scheduled").
		AddRow(uuid.New(), customerID, start.Add(2*time.Hour), end.Add(2*time.Hour), "canceled")

	mock.ExpectQuery("SELECT id, customer_id, start_time, end_time, status").
		WithArgs(customerID, from, to).
		WillReturnRows(rows)

	appointments, err := adapter.GetAppointmentsInRange(context.Background(), customerID, from, to)
	require.NoError(t, err)

	// Адаптер отдает записи всех статусов, canceled фильтрует сервис
	require.Len(t, appointments, 2)
	assert.Equal(t, appointmentID, appointments[0].ID)
	assert.Equal(t, start, appointments[0].StartTime)
	assert.Equal(t, domain.AppointmentStatusScheduled, appointments[0].Status)
	assert.Equal(t, domain.AppointmentStatusCanceled, appointments[1].Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAppointmentsInRange_QueryError(t *testing.T) {
	adapter, mock := newTestAdapter(t)
	customerID := uuid.New()

	from := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 7, 23, 59, 59, 0, time.UTC)

	mock.ExpectQuery("SELECT id, customer_id, start_time, end_time, status").
		WithArgs(customerID, from, to).
		WillReturnError(errors.New("timeout"))

	appointments, err := adapter.GetAppointmentsInRange(context.Background(), customerID, from, to)
	require.Error(t, err)
	assert.Nil(t, appointments)
	assert.Contains(t, err.Error(), "get appointments")
}
