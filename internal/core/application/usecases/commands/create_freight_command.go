package commands

import (
	"errors"

	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/errs"
	"freightbroker/internal/pkg/guard"
)

var ErrCreateFreightCommandIsNotConstructed = errors.New(
	"CreateFreightCommand must be created via NewCreateFreightCommand constructor",
)

// CreateFreightCommand represents a request to publish a new freight.
// Carries the fleet size, the pricing tuple and the rate-table keys used to
// compute the regulatory floor.
type CreateFreightCommand struct { //nolint:recvcheck //using for validation
	freightID      kernel.UUID
	requesterID    kernel.UUID
	requiredTrucks int
	pricing        freight.Pricing
	cargoCategory  freight.CargoCategory
	axleCount      int
	tableTier      freight.TableTier

	guard guard.ConstructorGuard
}

// NewCreateFreightCommand creates a command to publish a freight.
// Validates identifiers, fleet size, the pricing tuple and the rate keys.
func NewCreateFreightCommand(
	freightID kernel.UUID,
	requesterID kernel.UUID,
	requiredTrucks int,
	pricing freight.Pricing,
	category freight.CargoCategory,
	axleCount int,
	tier freight.TableTier,
) (CreateFreightCommand, error) {
	cmd := CreateFreightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIdentifiers(freightID, requesterID),
		cmd.setRequiredTrucks(requiredTrucks),
		cmd.setPricing(pricing),
		cmd.setRateKeys(category, axleCount, tier),
	); err != nil {
		return CreateFreightCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateFreightCommand) Validate() error {
	return c.guard.Validate(ErrCreateFreightCommandIsNotConstructed)
}

// FreightID returns the identifier for the new freight.
func (c CreateFreightCommand) FreightID() kernel.UUID {
	return c.freightID
}

// RequesterID returns the requester publishing the freight.
func (c CreateFreightCommand) RequesterID() kernel.UUID {
	return c.requesterID
}

// RequiredTrucks returns the requested fleet size.
func (c CreateFreightCommand) RequiredTrucks() int {
	return c.requiredTrucks
}

// Pricing returns the freight's pricing tuple.
func (c CreateFreightCommand) Pricing() freight.Pricing {
	return c.pricing
}

// CargoCategory returns the rate-table cargo category.
func (c CreateFreightCommand) CargoCategory() freight.CargoCategory {
	return c.cargoCategory
}

// AxleCount returns the rate-table axle count.
func (c CreateFreightCommand) AxleCount() int {
	return c.axleCount
}

// TableTier returns the rate-table tier.
func (c CreateFreightCommand) TableTier() freight.TableTier {
	return c.tableTier
}

func (c *CreateFreightCommand) setIdentifiers(freightID, requesterID kernel.UUID) error {
	if err := errors.Join(freightID.Validate(), requesterID.Validate()); err != nil {
		return err
	}

	c.freightID = freightID
	c.requesterID = requesterID
	return nil
}

func (c *CreateFreightCommand) setRequiredTrucks(requiredTrucks int) error {
	if requiredTrucks < 1 {
		return freight.ErrRequiredTrucksIsInvalid
	}

	c.requiredTrucks = requiredTrucks
	return nil
}

func (c *CreateFreightCommand) setPricing(pricing freight.Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}

	c.pricing = pricing
	return nil
}

func (c *CreateFreightCommand) setRateKeys(category freight.CargoCategory, axleCount int, tier freight.TableTier) error {
	if !category.Valid() {
		return errs.NewValueIsInvalidError("cargoCategory")
	}
	if !tier.Valid() {
		return errs.NewValueIsInvalidError("tableTier")
	}
	if axleCount < freight.MinAxleCount || axleCount > freight.MaxAxleCount {
		return errs.NewValueIsOutOfRangeError("axleCount", axleCount, freight.MinAxleCount, freight.MaxAxleCount)
	}

	c.cargoCategory = category
	c.axleCount = axleCount
	c.tableTier = tier
	return nil
}
