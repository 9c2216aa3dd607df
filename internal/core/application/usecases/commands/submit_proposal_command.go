package commands

import (
	"errors"

	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/domain/model/proposal"
	"freightbroker/internal/pkg/guard"
)

var ErrSubmitProposalCommandIsNotConstructed = errors.New(
	"SubmitProposalCommand must be created via NewSubmitProposalCommand constructor",
)

// SubmitProposalCommand represents a carrier's priced offer for one slot of
// a freight.
type SubmitProposalCommand struct { //nolint:recvcheck //using for validation
	proposalID kernel.UUID
	freightID  kernel.UUID
	carrierID  kernel.UUID
	price      kernel.Money

	guard guard.ConstructorGuard
}

// NewSubmitProposalCommand creates a command to submit a proposal.
// The price must be positive.
func NewSubmitProposalCommand(
	proposalID, freightID, carrierID kernel.UUID,
	price kernel.Money,
) (SubmitProposalCommand, error) {
	cmd := SubmitProposalCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIdentifiers(proposalID, freightID, carrierID),
		cmd.setPrice(price),
	); err != nil {
		return SubmitProposalCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitProposalCommand) Validate() error {
	return c.guard.Validate(ErrSubmitProposalCommandIsNotConstructed)
}

// ProposalID returns the identifier for the new proposal.
func (c SubmitProposalCommand) ProposalID() kernel.UUID {
	return c.proposalID
}

// FreightID returns the freight the proposal targets.
func (c SubmitProposalCommand) FreightID() kernel.UUID {
	return c.freightID
}

// CarrierID returns the carrier submitting the proposal.
func (c SubmitProposalCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

// Price returns the proposed per-truck price.
func (c SubmitProposalCommand) Price() kernel.Money {
	return c.price
}

func (c *SubmitProposalCommand) setIdentifiers(proposalID, freightID, carrierID kernel.UUID) error {
	if err := errors.Join(
		proposalID.Validate(),
		freightID.Validate(),
		carrierID.Validate(),
	); err != nil {
		return err
	}

	c.proposalID = proposalID
	c.freightID = freightID
	c.carrierID = carrierID
	return nil
}

func (c *SubmitProposalCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return proposal.ErrPriceIsNotPositive
	}

	c.price = price
	return nil
}
