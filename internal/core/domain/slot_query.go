package domain

import (
	"time"

	"github.com/google/uuid"
)

const DefaultStepMinutes = 15

// SlotQuery — валидированный запрос на расчет свободных слотов.
// Живет только в рамках одного вызова.
type SlotQuery struct {
	CustomerID      uuid.UUID
	Date            time.Time
	DurationMinutes int
	StepMinutes     int
}

// NewSlotQuery собирает запрос из сырых полей и валидирует их все разом.
// StepMinutes по умолчанию 15, если не передан.
// Положительность duration и step проверяется здесь, до входа в генерацию.
func NewSlotQuery(customerID string, date time.Time, durationMinutes int, stepMinutes *int) (SlotQuery, error) {
	verr := &ValidationError{}

	var customerUUID uuid.UUID
	if customerID == "" {
		verr.Add("customer_id", "is required")
	} else {
		parsed, err := uuid.Parse(customerID)
		if err != nil {
			verr.Add("customer_id", "must be a valid uuid")
		} else {
			customerUUID = parsed
		}
	}

	if date.IsZero() {
		verr.Add("date", "is required")
	}

	if durationMinutes <= 0 {
		verr.Add("duration_minutes", "must be a positive integer")
	}

	step := DefaultStepMinutes
	if stepMinutes != nil {
		step = *stepMinutes
		if step <= 0 {
			verr.Add("step_minutes", "must be a positive integer")
		}
	}

	if verr.HasViolations() {
		return SlotQuery{}, verr
	}

	return SlotQuery{
		CustomerID:      customerUUID,
		Date:            date.UTC(),
		DurationMinutes: durationMinutes,
		StepMinutes:     step,
	}, nil
}

func (q SlotQuery) Duration() time.Duration {
	return time.Duration(q.DurationMinutes) * time.Minute
}

func (q SlotQuery) Step() time.Duration {
	return time.Duration(q.StepMinutes) * time.Minute
}

// DayOfWeek — день недели запрошенной даты по календарю UTC.
func (q SlotQuery) DayOfWeek() DayOfWeek {
	return DayOfWeek(q.Date.UTC().Weekday())
}
