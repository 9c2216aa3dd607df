package commands

import (
	"context"

	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/services"
	"freightbroker/internal/core/ports"
)

// CreateFreightCommandHandler handles the business logic for freight
// publication. Computes the initial regulatory floor from the rate table and
// stores the freight in Open status with zero accepted trucks.
type CreateFreightCommandHandler struct {
	uowFactory FreightUoWFactory
	rates      ports.RateTableRepository
}

// NewCreateFreightCommandHandler creates a handler for freight publication.
func NewCreateFreightCommandHandler(
	uowFactory FreightUoWFactory,
	rates ports.RateTableRepository,
) CreateFreightCommandHandler {
	return CreateFreightCommandHandler{
		uowFactory: uowFactory,
		rates:      rates,
	}
}

// Handle processes the freight publication command. A missing rate row makes
// the freight not floor-enforceable rather than failing the publication.
func (h CreateFreightCommandHandler) Handle(ctx context.Context, cmd CreateFreightCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newFreight, err := freight.NewFreight(
		cmd.FreightID(),
		cmd.RequesterID(),
		cmd.RequiredTrucks(),
		cmd.Pricing(),
		cmd.CargoCategory(),
		cmd.AxleCount(),
		cmd.TableTier(),
	)
	if err != nil {
		return err
	}

	floor, err := services.NewFloorCalculator(h.rates).FloorFor(
		ctx, cmd.CargoCategory(), cmd.AxleCount(), cmd.TableTier(), cmd.Pricing().DistanceKM(),
	)
	if err != nil {
		return err
	}
	newFreight.SetMinimumFloor(floor)

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.FreightRepository().Add(ctx, newFreight); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
