package in

import (
	"context"

	"github.com/ligovsky/booking-slots-service/internal/core/domain"
)

type SlotQueryUseCase interface {
	// Расчет свободных слотов клиента на запрошенную дату
	QuerySlots(ctx context.Context, query domain.SlotQuery) ([]domain.Slot, error)
}
