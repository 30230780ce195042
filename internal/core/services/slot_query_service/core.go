package slot_query_service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ligovsky/booking-slots-service/internal/core/domain"
	"github.com/ligovsky/booking-slots-service/internal/core/ports/out"
	"github.com/ligovsky/booking-slots-service/internal/utils"
)

// SlotQueryService считает свободные слоты клиента на дату.
// Состояния между запросами нет, весь расчет - чистая функция от двух
// read-only коллекций и запроса. День недели берется по календарю UTC,
// запрошенная дата трактуется как полночь UTC (известное ограничение).
type SlotQueryService struct {
	availabilityPort out.AvailabilityPort
	appointmentPort  out.AppointmentPort
	logger           out.LoggerPort
}

func NewSlotQueryService(
	availabilityPort out.AvailabilityPort,
	appointmentPort out.AppointmentPort,
	logger out.LoggerPort,
) *SlotQueryService {
	return &SlotQueryService{
		availabilityPort: availabilityPort,
		appointmentPort:  appointmentPort,
		logger:           logger.WithModule("SlotQueryService"),
	}
}

func (s *SlotQueryService) QuerySlots(ctx context.Context, query domain.SlotQuery) ([]domain.Slot, error) {
	s.logger.Info("slots.query.started", out.LogFields{
		"customerId":      query.CustomerID,
		"date":            query.Date.Format("2006-01-02"),
		"durationMinutes": query.DurationMinutes,
		"stepMinutes":     query.StepMinutes,
	})

	dayStart := utils.StartOfDayUTC(query.Date)
	dayEnd := utils.EndOfDayUTC(query.Date)

	var windows []domain.AvailabilityWindow
	var appointments []domain.Appointment

	// Резолверы не зависят друг от друга, выполняем параллельно.
	// Ошибка любого из них прерывает весь расчет, частичный результат не отдаем.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		windows, err = s.availabilityPort.GetAvailabilityWindows(gctx, query.CustomerID, query.DayOfWeek())
		if err != nil {
			s.logger.Error("slots.query.availability.fetch_failed", out.LogFields{
				"customerId": query.CustomerID,
				"error":      err.Error(),
			})
			return fmt.Errorf("slots.query.availability.fetch_failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		appointments, err = s.appointmentPort.GetAppointmentsInRange(gctx, query.CustomerID, dayStart, dayEnd)
		if err != nil {
			s.logger.Error("slots.query.appointments.fetch_failed", out.LogFields{
				"customerId": query.CustomerID,
				"error":      err.Error(),
			})
			return fmt.Errorf("slots.query.appointments.fetch_failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Отсутствие окон на этот день недели - не ошибка, а валидный
	// бизнес-результат: у клиента нет доступности, список пуст
	if len(windows) == 0 {
		s.logger.Debug("slots.query.no_windows", out.LogFields{
			"customerId": query.CustomerID,
			"dayOfWeek":  query.DayOfWeek(),
		})
		return []domain.Slot{}, nil
	}

	busy := busyIntervals(appointments)
	slots := generateSlots(windows, busy, query)

	// Сортируем по времени начала: порядок окон на входе не гарантирован,
	// а ответ должен быть детерминированным независимо от хранилища
	slots = SlotSlice(slots).quickSort()

	s.logger.Info("slots.query.finished", out.LogFields{
		"customerId":        query.CustomerID,
		"windowsCount":      len(windows),
		"appointmentsCount": len(appointments),
		"slotsCount":        len(slots),
	})

	return slots, nil
}
