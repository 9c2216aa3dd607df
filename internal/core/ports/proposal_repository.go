package ports

import (
	"context"

	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/domain/model/proposal"
)

// ProposalRepository defines the persistence contract for carrier proposals.
type ProposalRepository interface {
	// Add persists a new proposal.
	Add(ctx context.Context, aggregate *proposal.Proposal) error

	// Update persists a proposal's resolution (accepted or rejected).
	Update(ctx context.Context, aggregate *proposal.Proposal) error

	// Get retrieves a proposal by its unique identifier.
	// Returns an ObjectNotFoundError when no such proposal exists.
	Get(ctx context.Context, id kernel.UUID) (*proposal.Proposal, error)

	// GetAllPendingByFreight retrieves the unresolved proposals for a freight.
	GetAllPendingByFreight(ctx context.Context, freightID kernel.UUID) ([]*proposal.Proposal, error)
}
