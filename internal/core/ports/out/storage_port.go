package out

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ligovsky/booking-slots-service/internal/core/domain"
)

// Хранилища принадлежат внешней booking/admin подсистеме,
// сервис читает их и никогда не пишет.

type AvailabilityPort interface {
	// Все окна доступности клиента на день недели
	GetAvailabilityWindows(ctx context.Context, customerID uuid.UUID, dayOfWeek domain.DayOfWeek) ([]domain.AvailabilityWindow, error)
}

type AppointmentPort interface {
	// Все записи клиента, начало которых попадает в [from, to].
	// Статусы не фильтруются, canceled отбрасывает сервис.
	GetAppointmentsInRange(ctx context.Context, customerID uuid.UUID, from, to time.Time) ([]domain.Appointment, error)
}
