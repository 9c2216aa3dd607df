package commands

import (
	"errors"

	"freightbroker/internal/pkg/guard"
)

var ErrRepairAgreedPricesCommandIsNotConstructed = errors.New(
	"RepairAgreedPricesCommand must be created via NewRepairAgreedPricesCommand constructor",
)

// RepairAgreedPricesCommand triggers a batch repair of assignments whose
// stored agreed price no longer matches the price of the proposal that
// created them. Historical rows written by a defective allocation divided
// the price by the fleet size; this command restores the full per-truck
// price.
type RepairAgreedPricesCommand struct {
	guard guard.ConstructorGuard
}

// NewRepairAgreedPricesCommand creates the batch repair command.
func NewRepairAgreedPricesCommand() RepairAgreedPricesCommand {
	return RepairAgreedPricesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RepairAgreedPricesCommand) Validate() error {
	return c.guard.Validate(ErrRepairAgreedPricesCommandIsNotConstructed)
}
