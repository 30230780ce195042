package slot_query_service

import (
	"time"

	"github.com/ligovsky/booking-slots-service/internal/core/domain"
	"github.com/ligovsky/booking-slots-service/internal/utils"
)

// Защитный предел перебора кандидатов в одном окне. Валидация гарантирует
// положительный шаг до входа в цикл, предел - терминальная граница сверх нее
// (минут в сутках 1440, при минимальном шаге больше кандидатов не бывает).
const maxCandidatesPerWindow = 1440

// busyIntervals превращает записи в полуоткрытые занятые интервалы.
// Canceled записи не блокируют слоты и отбрасываются здесь.
func busyIntervals(appointments []domain.Appointment) []domain.BusyInterval {
	intervals := make([]domain.BusyInterval, 0, len(appointments))
	for _, appointment := range appointments {
		if !appointment.IsBusy() {
			continue
		}
		intervals = append(intervals, domain.BusyInterval{
			Start: appointment.StartTime,
			End:   appointment.EndTime,
		})
	}
	return intervals
}

// generateSlots — чистая функция от (окна, занятые интервалы, запрос).
// Выжившие кандидаты накапливаются по всем окнам дня: у дня может быть
// несколько непересекающихся окон, например утро и вечер.
func generateSlots(windows []domain.AvailabilityWindow, busy []domain.BusyInterval, query domain.SlotQuery) []domain.Slot {
	slots := make([]domain.Slot, 0)
	for _, window := range windows {
		slots = append(slots, generateWindowSlots(window, busy, query)...)
	}
	return slots
}

// generateWindowSlots перебирает кандидатов внутри одного окна с шагом step.
func generateWindowSlots(window domain.AvailabilityWindow, busy []domain.BusyInterval, query domain.SlotQuery) []domain.Slot {
	// Привязываем wall-clock границы окна к запрошенной дате
	windowStart := utils.AnchorWallClock(query.Date, window.StartTime.Time)
	windowEnd := utils.AnchorWallClock(query.Date, window.EndTime.Time)

	duration := query.Duration()
	step := query.Step()

	slots := make([]domain.Slot, 0)
	candidates := 0

	// Кандидат должен целиком помещаться в окно: start + duration <= windowEnd
	for start := windowStart; !start.Add(duration).After(windowEnd); start = start.Add(step) {
		if candidates >= maxCandidatesPerWindow {
			break
		}
		candidates++

		end := start.Add(duration)
		if overlapsAny(busy, start, end) {
			continue
		}

		slots = append(slots, domain.Slot{Start: start, End: end})
	}

	return slots
}

func overlapsAny(busy []domain.BusyInterval, start, end time.Time) bool {
	for _, interval := range busy {
		if interval.Overlaps(start, end) {
			return true
		}
	}
	return false
}
