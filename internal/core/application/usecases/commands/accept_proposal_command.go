package commands

import (
	"errors"

	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/guard"
)

var ErrAcceptProposalCommandIsNotConstructed = errors.New(
	"AcceptProposalCommand must be created via NewAcceptProposalCommand constructor",
)

// AcceptProposalCommand represents a requester's decision to accept a
// carrier's proposal for one slot of their freight.
type AcceptProposalCommand struct { //nolint:recvcheck //using for validation
	proposalID  kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptProposalCommand creates a command to accept a proposal on behalf
// of the given requester.
func NewAcceptProposalCommand(proposalID, requesterID kernel.UUID) (AcceptProposalCommand, error) {
	if err := errors.Join(
		proposalID.Validate(),
		requesterID.Validate(),
	); err != nil {
		return AcceptProposalCommand{}, err
	}

	return AcceptProposalCommand{
		proposalID:  proposalID,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptProposalCommand) Validate() error {
	return c.guard.Validate(ErrAcceptProposalCommandIsNotConstructed)
}

// ProposalID returns the proposal to accept.
func (c AcceptProposalCommand) ProposalID() kernel.UUID {
	return c.proposalID
}

// RequesterID returns the actor who must own the freight.
func (c AcceptProposalCommand) RequesterID() kernel.UUID {
	return c.requesterID
}
