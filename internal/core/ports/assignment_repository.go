package ports

import (
	"context"

	"freightbroker/internal/core/domain/model/assignment"
	"freightbroker/internal/core/domain/model/kernel"
)

// PriceMismatch is one assignment whose stored agreed price has drifted from
// the price of the proposal that created it. Produced by the repair job scan.
type PriceMismatch struct {
	AssignmentID  kernel.UUID
	AgreedPrice   kernel.Money
	ProposalPrice kernel.Money
}

// AssignmentRepository defines the persistence contract for assignments.
//
// One row exists per (freight, carrier) acceptance. The partial unique index
// on (freight_id, carrier_id) over non-cancelled rows is the storage-level
// backstop of the duplicate-carrier rule; inserting a second active row for
// the same pair surfaces as a ConflictError from Add.
type AssignmentRepository interface {
	// Add persists a new assignment. Returns a ConflictError when the carrier
	// already holds an active assignment on the same freight.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists an assignment's status and payment handshake changes.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment by its unique identifier.
	// Returns an ObjectNotFoundError when no such assignment exists.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// ActiveExists reports whether the carrier holds a non-cancelled
	// assignment on the freight. Used as the cheap pre-check before the
	// unique index has the final word.
	ActiveExists(ctx context.Context, freightID, carrierID kernel.UUID) (bool, error)

	// GetActiveStatusesByFreight returns the statuses of the freight's
	// non-cancelled assignments, the input of effective-status aggregation.
	GetActiveStatusesByFreight(ctx context.Context, freightID kernel.UUID) ([]assignment.Status, error)

	// GetPriceMismatches scans for assignments whose agreed price no longer
	// equals the originating proposal's price.
	GetPriceMismatches(ctx context.Context) ([]PriceMismatch, error)

	// RepairAgreedPrice rewrites an assignment's agreed price to the proposal
	// price and records the prior value for audit.
	RepairAgreedPrice(ctx context.Context, id kernel.UUID, price, repairedFrom kernel.Money) error
}
