package commands

import (
	"errors"

	"freightbroker/internal/pkg/guard"
)

var ErrRecalculatePriceFloorsCommandIsNotConstructed = errors.New(
	"RecalculatePriceFloorsCommand must be created via NewRecalculatePriceFloorsCommand constructor",
)

// RecalculatePriceFloorsCommand triggers a batch recomputation of the
// regulatory floor for every freight still seeking capacity. Run after the
// rate table changes.
type RecalculatePriceFloorsCommand struct {
	guard guard.ConstructorGuard
}

// NewRecalculatePriceFloorsCommand creates the batch recalculation command.
func NewRecalculatePriceFloorsCommand() RecalculatePriceFloorsCommand {
	return RecalculatePriceFloorsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RecalculatePriceFloorsCommand) Validate() error {
	return c.guard.Validate(ErrRecalculatePriceFloorsCommandIsNotConstructed)
}
