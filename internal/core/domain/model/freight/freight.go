package freight

import (
	"errors"
	"fmt"

	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/errs"
	"freightbroker/internal/pkg/guard"
)

var (
	// ErrFreightIsNotConstructed is returned when a Freight instance was not
	// created through NewFreight or RestoreFreight.
	ErrFreightIsNotConstructed = errors.New("Freight must be created via NewFreight or RestoreFreight")

	// ErrRequiredTrucksIsInvalid is returned when the requested fleet size is
	// not at least one truck.
	ErrRequiredTrucksIsInvalid = errs.NewValueIsRequiredError("requiredTrucks must be at least 1")
)

// Freight is the aggregate root for a shipment request. A freight may need a
// single truck or a fleet of requiredTrucks trucks; carriers bind to it one
// slot at a time through accepted proposals.
//
// Invariants:
//   - 0 ≤ acceptedTrucks ≤ requiredTrucks at all times
//   - driverID is only used for single-truck freights, transitions null→set
//     exactly once, and reverts only through withdrawal of the sole assignment
//   - requiredTrucks is fixed at creation
//   - minimumFloor is the per-truck regulatory floor; it is never divided by
//     requiredTrucks, and nil means the floor is not enforceable
//
// The (acceptedTrucks, driverID) pair is the system's only contended mutable
// state. The aggregate deliberately exposes no increment or bind method:
// those mutations go through the repository's predicate-guarded updates so a
// read-then-write race cannot be reintroduced by handler code.
type Freight struct {
	id             kernel.UUID
	requesterID    kernel.UUID
	requiredTrucks int
	acceptedTrucks int
	status         Status
	driverID       *kernel.UUID
	pricing        Pricing
	cargoCategory  CargoCategory
	axleCount      int
	tableTier      TableTier
	minimumFloor   *kernel.Money
	guard          guard.ConstructorGuard
}

// NewFreight creates an open freight with no accepted trucks.
func NewFreight(
	id kernel.UUID,
	requesterID kernel.UUID,
	requiredTrucks int,
	pricing Pricing,
	category CargoCategory,
	axleCount int,
	tier TableTier,
) (*Freight, error) {
	if err := errors.Join(
		id.Validate(),
		requesterID.Validate(),
		pricing.Validate(),
	); err != nil {
		return nil, err
	}
	if requiredTrucks < 1 {
		return nil, ErrRequiredTrucksIsInvalid
	}
	if !category.Valid() {
		return nil, errs.NewValueIsInvalidError("cargoCategory")
	}
	if !tier.Valid() {
		return nil, errs.NewValueIsInvalidError("tableTier")
	}
	if axleCount < MinAxleCount || axleCount > MaxAxleCount {
		return nil, errs.NewValueIsOutOfRangeError("axleCount", axleCount, MinAxleCount, MaxAxleCount)
	}

	return &Freight{
		id:             id,
		requesterID:    requesterID,
		requiredTrucks: requiredTrucks,
		acceptedTrucks: 0,
		status:         Open,
		pricing:        pricing,
		cargoCategory:  category,
		axleCount:      axleCount,
		tableTier:      tier,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// RestoreFreight reconstructs a freight from persistence, re-checking the
// capacity invariant so corrupted rows are caught at the boundary.
func RestoreFreight(
	id kernel.UUID,
	requesterID kernel.UUID,
	requiredTrucks int,
	acceptedTrucks int,
	status Status,
	driverID *kernel.UUID,
	pricing Pricing,
	category CargoCategory,
	axleCount int,
	tier TableTier,
	minimumFloor *kernel.Money,
) (*Freight, error) {
	if err := errors.Join(
		id.Validate(),
		requesterID.Validate(),
		status.Validate(),
		pricing.Validate(),
	); err != nil {
		return nil, err
	}
	if requiredTrucks < 1 {
		return nil, ErrRequiredTrucksIsInvalid
	}
	if acceptedTrucks < 0 || acceptedTrucks > requiredTrucks {
		return nil, errs.NewValueIsOutOfRangeError("acceptedTrucks", acceptedTrucks, 0, requiredTrucks)
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
		if requiredTrucks != 1 {
			return nil, errs.NewValueIsInvalidErrorWithCause("driverId",
				fmt.Errorf("driver link is only valid for single-truck freights, requiredTrucks is %d", requiredTrucks))
		}
	}

	return &Freight{
		id:             id,
		requesterID:    requesterID,
		requiredTrucks: requiredTrucks,
		acceptedTrucks: acceptedTrucks,
		status:         status,
		driverID:       driverID,
		pricing:        pricing,
		cargoCategory:  category,
		axleCount:      axleCount,
		tableTier:      tier,
		minimumFloor:   minimumFloor,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the freight was built through a constructor.
func (f *Freight) Validate() error {
	if f == nil {
		return ErrFreightIsNotConstructed
	}
	return f.guard.Validate(ErrFreightIsNotConstructed)
}

// ID returns the freight's unique identifier.
func (f *Freight) ID() kernel.UUID {
	return f.id
}

// RequesterID returns the identifier of the requester who owns the freight.
func (f *Freight) RequesterID() kernel.UUID {
	return f.requesterID
}

// RequiredTrucks returns the fleet size requested at creation.
func (f *Freight) RequiredTrucks() int {
	return f.requiredTrucks
}

// AcceptedTrucks returns the number of slots currently filled.
func (f *Freight) AcceptedTrucks() int {
	return f.acceptedTrucks
}

// Status returns the freight's own lifecycle column. It is authoritative only
// for single-truck freights; use the status aggregator otherwise.
func (f *Freight) Status() Status {
	return f.status
}

// Driver returns the bound carrier for a single-truck freight, nil otherwise.
func (f *Freight) Driver() *kernel.UUID {
	return f.driverID
}

// Pricing returns the freight's pricing tuple.
func (f *Freight) Pricing() Pricing {
	return f.pricing
}

// CargoCategory returns the rate-table cargo category.
func (f *Freight) CargoCategory() CargoCategory {
	return f.cargoCategory
}

// AxleCount returns the rate-table axle count.
func (f *Freight) AxleCount() int {
	return f.axleCount
}

// TableTier returns the rate-table tier.
func (f *Freight) TableTier() TableTier {
	return f.tableTier
}

// MinimumFloor returns the per-truck regulatory floor, or nil when the floor
// is not enforceable for this freight.
func (f *Freight) MinimumFloor() *kernel.Money {
	return f.minimumFloor
}

// FloorEnforceable reports whether acceptance must check the regulatory floor.
func (f *Freight) FloorEnforceable() bool {
	return f.minimumFloor != nil
}

// SetMinimumFloor records a computed regulatory floor. Passing nil marks the
// freight as not floor-enforceable; it must never be treated as a zero floor.
func (f *Freight) SetMinimumFloor(floor *kernel.Money) {
	f.minimumFloor = floor
}

// IsSingleTruck reports whether the freight needs exactly one truck.
func (f *Freight) IsSingleTruck() bool {
	return f.requiredTrucks == 1
}

// HasCapacity reports whether at least one slot is unfilled.
func (f *Freight) HasCapacity() bool {
	return f.acceptedTrucks < f.requiredTrucks
}

// RemainingSlots returns the number of unfilled slots.
func (f *Freight) RemainingSlots() int {
	return f.requiredTrucks - f.acceptedTrucks
}

// IsOwnedBy reports whether the given actor is the freight's requester.
func (f *Freight) IsOwnedBy(requesterID kernel.UUID) bool {
	return f.requesterID.IsEqual(requesterID)
}

// IsEqual compares two freights by identifier.
func (f *Freight) IsEqual(other *Freight) bool {
	return other != nil && f.id.IsEqual(other.id)
}
