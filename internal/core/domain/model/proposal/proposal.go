// Package proposal contains a carrier's priced offer against a freight.
// A proposal transitions to ACCEPTED at most once and is immutable afterward.
package proposal

import (
	"errors"
	"fmt"

	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/errs"
	"freightbroker/internal/pkg/guard"
)

var (
	// ErrProposalIsNotConstructed is returned when a Proposal instance was not
	// created through NewProposal or RestoreProposal.
	ErrProposalIsNotConstructed = errors.New("Proposal must be created via NewProposal or RestoreProposal")

	// ErrPriceIsNotPositive is returned when the proposed price is zero or negative.
	ErrPriceIsNotPositive = errs.NewValueIsInvalidError("proposedPrice must be greater than zero")
)

// Status is the proposal lifecycle state.
type Status int

const (
	StatusUnknown Status = iota
	Pending
	Accepted
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "UNKNOWN",
		Pending:       "PENDING",
		Accepted:      "ACCEPTED",
		Rejected:      "REJECTED",
	}
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a wire name such as "PENDING" into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid proposal status", s))
}

// Validate checks that the value is one of the declared statuses.
func (s Status) Validate() error {
	switch s {
	case Pending, Accepted, Rejected:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid proposal status", s))
	}
}

// Proposal is a carrier's priced offer for one slot of a freight.
type Proposal struct {
	id        kernel.UUID
	freightID kernel.UUID
	carrierID kernel.UUID
	price     kernel.Money
	status    Status
	guard     guard.ConstructorGuard
}

// NewProposal creates a pending proposal. The price must be positive.
func NewProposal(id, freightID, carrierID kernel.UUID, price kernel.Money) (*Proposal, error) {
	if err := errors.Join(
		id.Validate(),
		freightID.Validate(),
		carrierID.Validate(),
	); err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return nil, ErrPriceIsNotPositive
	}

	return &Proposal{
		id:        id,
		freightID: freightID,
		carrierID: carrierID,
		price:     price,
		status:    Pending,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreProposal reconstructs a proposal from persistence.
func RestoreProposal(id, freightID, carrierID kernel.UUID, price kernel.Money, status Status) (*Proposal, error) {
	if err := errors.Join(
		id.Validate(),
		freightID.Validate(),
		carrierID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Proposal{
		id:        id,
		freightID: freightID,
		carrierID: carrierID,
		price:     price,
		status:    status,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the proposal was built through a constructor.
func (p *Proposal) Validate() error {
	if p == nil {
		return ErrProposalIsNotConstructed
	}
	return p.guard.Validate(ErrProposalIsNotConstructed)
}

// ID returns the proposal's unique identifier.
func (p *Proposal) ID() kernel.UUID {
	return p.id
}

// FreightID returns the freight the proposal targets.
func (p *Proposal) FreightID() kernel.UUID {
	return p.freightID
}

// CarrierID returns the carrier who submitted the proposal.
func (p *Proposal) CarrierID() kernel.UUID {
	return p.carrierID
}

// Price returns the proposed per-truck price.
func (p *Proposal) Price() kernel.Money {
	return p.price
}

// Status returns the current proposal status.
func (p *Proposal) Status() Status {
	return p.status
}

// IsPending reports whether the proposal can still be resolved.
func (p *Proposal) IsPending() bool {
	return p.status == Pending
}

// Accept resolves the proposal to ACCEPTED. Only a pending proposal can be
// accepted; once accepted it is immutable, so a second resolution attempt is
// a conflict.
func (p *Proposal) Accept() error {
	if p.status != Pending {
		return errs.NewConflictErrorWithCause("proposal", p.id.String(),
			fmt.Errorf("proposal is already %s", p.status))
	}
	p.status = Accepted
	return nil
}

// Reject resolves the proposal to REJECTED. Only a pending proposal can be
// rejected.
func (p *Proposal) Reject() error {
	if p.status != Pending {
		return errs.NewConflictErrorWithCause("proposal", p.id.String(),
			fmt.Errorf("proposal is already %s", p.status))
	}
	p.status = Rejected
	return nil
}
