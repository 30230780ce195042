package domain

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
	AppointmentStatusNoshow    AppointmentStatus = "no_show"
)

// Appointment — запись клиента с абсолютными метками времени.
// Занятым считается любой статус, кроме canceled.
type Appointment struct {
	ID         uuid.UUID         `json:"id"`
	CustomerID uuid.UUID         `json:"customerId"`
	StartTime  time.Time         `json:"startTime"`
	EndTime    time.Time         `json:"endTime"`
	Status     AppointmentStatus `json:"status"`
}

func (a Appointment) IsBusy() bool {
	return a.Status != AppointmentStatusCanceled
}

// BusyInterval — полуоткрытый занятый интервал [Start, End).
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps проверяет пересечение с кандидатом [start, end) по полуоткрытой
// семантике: касание границ пересечением не считается.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}
