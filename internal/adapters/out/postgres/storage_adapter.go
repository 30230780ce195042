package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ligovsky/booking-slots-service/internal/core/domain"
	"github.com/ligovsky/booking-slots-service/internal/core/json_types"
	"github.com/ligovsky/booking-slots-service/internal/core/ports/out"
)

// Querier — минимальный срез pgxpool.Pool, достаточный для адаптера.
// Позволяет подменять пул моком в тестах.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// StorageAdapter читает окна доступности и записи из базы booking-подсистемы.
// Таблицами владеет она же, адаптер никогда не пишет.
type StorageAdapter struct {
	db     Querier
	logger out.LoggerPort
}

func NewStorageAdapter(db Querier, logger out.LoggerPort) *StorageAdapter {
	return &StorageAdapter{
		db:     db,
		logger: logger,
	}
}

func (a *StorageAdapter) GetAvailabilityWindows(ctx context.Context, customerID uuid.UUID, dayOfWeek domain.DayOfWeek) ([]domain.AvailabilityWindow, error) {
	query := `
		SELECT customer_id, day_of_week, start_time::text, end_time::text
		FROM availability_windows
		WHERE customer_id = $1 AND day_of_week = $2
		ORDER BY start_time
	`

	rows, err := a.db.Query(ctx, query, customerID, int(dayOfWeek))
	if err != nil {
		a.logger.Error("storage.availability_windows.fetch_failed", out.LogFields{
			"customerId": customerID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("get availability windows: %w", err)
	}
	defer rows.Close()

	windows := make([]domain.AvailabilityWindow, 0)
	for rows.Next() {
		var window domain.AvailabilityWindow
		var day int
		var startTime, endTime string

		if err := rows.Scan(&window.CustomerID, &day, &startTime, &endTime); err != nil {
			return nil, fmt.Errorf("scan availability window: %w", err)
		}

		window.DayOfWeek = domain.DayOfWeek(day)
		if window.StartTime, err = parseWallClock(startTime); err != nil {
			return nil, fmt.Errorf("parse availability window start_time: %w", err)
		}
		if window.EndTime, err = parseWallClock(endTime); err != nil {
			return nil, fmt.Errorf("parse availability window end_time: %w", err)
		}

		windows = append(windows, window)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate availability windows: %w", err)
	}

	a.logger.Debug("storage.availability_windows.fetch_success", out.LogFields{
		"customerId": customerID,
		"dayOfWeek":  dayOfWeek,
		"count":      len(windows),
	})

	return windows, nil
}

func (a *StorageAdapter) GetAppointmentsInRange(ctx context.Context, customerID uuid.UUID, from, to time.Time) ([]domain.Appointment, error) {
	query := `
		SELECT id, customer_id, start_time, end_time, status
		FROM appointments
		WHERE customer_id = $1 AND start_time >= $2 AND start_time <= $3
	`

	rows, err := a.db.Query(ctx, query, customerID, from, to)
	if err != nil {
		a.logger.Error("storage.appointments.fetch_failed", out.LogFields{
			"customerId": customerID,
			"error":      err.Error(),
		})
		return nil, fmt.Errorf("get appointments: %w", err)
	}
	defer rows.Close()

	appointments := make([]domain.Appointment, 0)
	for rows.Next() {
		var appointment domain.Appointment
		var status string

		if err := rows.Scan(
			&appointment.ID,
			&appointment.CustomerID,
			&appointment.StartTime,
			&appointment.EndTime,
			&status,
		); err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}

		appointment.Status = domain.AppointmentStatus(status)
		appointments = append(appointments, appointment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointments: %w", err)
	}

	a.logger.Debug("storage.appointments.fetch_success", out.LogFields{
		"customerId": customerID,
		"count":      len(appointments),
	})

	return appointments, nil
}

// parseWallClock разбирает время суток из текстового представления колонки time.
func parseWallClock(str string) (json_types.WallClock, error) {
	parsed, err := time.Parse("15:04:05", str)
	if err != nil {
		parsed, err = time.Parse("15:04", str)
		if err != nil {
			return json_types.WallClock{}, err
		}
	}
	return json_types.WallClock{Time: parsed}, nil
}
