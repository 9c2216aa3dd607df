// Package ports defines the persistence and integration contracts of the
// freight allocation engine. The interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"
)

// FreightRepository defines the persistence contract for freight aggregates.
//
// The contended mutable state of a freight, its accepted-truck counter and
// its single-truck driver link, is mutated only through the predicate-guarded
// methods below. Each issues one conditional UPDATE and classifies an
// unmatched predicate as a CONFLICT, so two concurrent acceptances of the
// last slot can never both succeed, regardless of what either handler read
// beforehand.
type FreightRepository interface {
	// Add persists a new freight aggregate to storage.
	Add(ctx context.Context, aggregate *freight.Freight) error

	// Update persists changes to an existing freight aggregate. It covers the
	// uncontended columns only; the guarded methods own the counter and the
	// driver link.
	Update(ctx context.Context, aggregate *freight.Freight) error

	// Get retrieves a freight aggregate by its unique identifier.
	// Returns an ObjectNotFoundError when no such freight exists.
	Get(ctx context.Context, id kernel.UUID) (*freight.Freight, error)

	// GetAllOpen retrieves every freight still seeking capacity. Used by the
	// floor recalculation job and the open-freight listing.
	GetAllOpen(ctx context.Context) ([]*freight.Freight, error)

	// ReserveSlot atomically increments accepted_trucks, guarded by
	// accepted_trucks < required_trucks, and returns the counter the update
	// produced. The caller derives remaining capacity from that value, never
	// from its pre-update read. Returns a ConflictError when the freight is
	// already at capacity.
	ReserveSlot(ctx context.Context, id kernel.UUID) (int, error)

	// ReleaseSlot atomically decrements accepted_trucks, guarded by
	// accepted_trucks > 0. Returns a ConflictError when no slot is filled.
	ReleaseSlot(ctx context.Context, id kernel.UUID) error

	// BindDriver atomically sets the driver link of a single-truck freight,
	// guarded by driver_id IS NULL. Returns a ConflictError when another
	// carrier is already bound.
	BindDriver(ctx context.Context, id kernel.UUID, driverID kernel.UUID) error

	// ClearDriver removes the driver link, guarded by driver_id = driverID.
	// Returns a ConflictError when the link does not belong to that carrier.
	ClearDriver(ctx context.Context, id kernel.UUID, driverID kernel.UUID) error

	// UpdateStatus sets the freight's own status column. Meaningful for
	// single-truck freights, whose column mirrors the sole assignment.
	UpdateStatus(ctx context.Context, id kernel.UUID, status freight.Status) error

	// UpdateMinimumFloor stores a recalculated per-truck floor. A nil floor
	// marks the freight as not floor-enforceable.
	UpdateMinimumFloor(ctx context.Context, id kernel.UUID, floor *kernel.Money) error
}
