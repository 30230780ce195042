package domain

import (
	"github.com/google/uuid"
	"github.com/ligovsky/booking-slots-service/internal/core/json_types"
)

// DayOfWeek — день недели по календарю UTC, 0 = воскресенье .. 6 = суббота.
type DayOfWeek int

const (
	DayOfWeekSunday    DayOfWeek = 0
	DayOfWeekMonday    DayOfWeek = 1
	DayOfWeekTuesday   DayOfWeek = 2
	DayOfWeekWednesday DayOfWeek = 3
	DayOfWeekThursday  DayOfWeek = 4
	DayOfWeekFriday    DayOfWeek = 5
	DayOfWeekSaturday  DayOfWeek = 6
)

// AvailabilityWindow — повторяющийся недельный интервал доступности клиента.
// Владеет данными внешняя booking/admin подсистема, здесь только чтение.
// Инвариант: StartTime < EndTime.
type AvailabilityWindow struct {
	CustomerID uuid.UUID            `json:"customerId"`
	DayOfWeek  DayOfWeek            `json:"dayOfWeek"`
	StartTime  json_types.WallClock `json:"startTime"`
	EndTime    json_types.WallClock `json:"endTime"`
}
