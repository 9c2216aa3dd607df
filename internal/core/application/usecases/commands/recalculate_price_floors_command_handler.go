package commands

import (
	"context"
	"log/slog"

	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/domain/services"
	"freightbroker/internal/core/ports"
)

// RecalculatePriceFloorsCommandHandler recomputes minimum floors from the
// current rate table for all open freights. It never touches accepted
// assignments' agreed prices and skips freights whose floor is unchanged, so
// repeated runs are idempotent.
type RecalculatePriceFloorsCommandHandler struct {
	uowFactory FreightUoWFactory
	rates      ports.RateTableRepository
	logger     *slog.Logger
}

// NewRecalculatePriceFloorsCommandHandler creates a handler for the batch
// floor recalculation.
func NewRecalculatePriceFloorsCommandHandler(
	uowFactory FreightUoWFactory,
	rates ports.RateTableRepository,
	logger *slog.Logger,
) RecalculatePriceFloorsCommandHandler {
	return RecalculatePriceFloorsCommandHandler{
		uowFactory: uowFactory,
		rates:      rates,
		logger:     logger,
	}
}

// Handle runs the recalculation and returns the number of floors changed.
// Every changed floor is logged with its old and new value.
func (h RecalculatePriceFloorsCommandHandler) Handle(
	ctx context.Context, cmd RecalculatePriceFloorsCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	version, err := h.rates.Version(ctx)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	freightRepo := uow.FreightRepository()
	freights, err := freightRepo.GetAllOpen(ctx)
	if err != nil {
		return 0, err
	}

	calculator := services.NewFloorCalculator(h.rates)

	changed := 0
	for _, fr := range freights {
		floor, calcErr := calculator.FloorFor(
			ctx, fr.CargoCategory(), fr.AxleCount(), fr.TableTier(), fr.Pricing().DistanceKM(),
		)
		if calcErr != nil {
			return 0, calcErr
		}

		if floorsEqual(fr.MinimumFloor(), floor) {
			continue
		}

		h.logger.InfoContext(ctx, "price floor changed",
			"freightId", fr.ID().String(),
			"oldFloor", floorString(fr.MinimumFloor()),
			"newFloor", floorString(floor),
			"rateTableVersion", version,
		)

		if err = freightRepo.UpdateMinimumFloor(ctx, fr.ID(), floor); err != nil {
			return 0, err
		}
		changed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return changed, nil
}

func floorsEqual(a, b *kernel.Money) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(*b)
}

func floorString(m *kernel.Money) string {
	if m == nil {
		return "none"
	}
	return m.String()
}
