package commands

import (
	"errors"

	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/guard"
)

var ErrWithdrawAssignmentCommandIsNotConstructed = errors.New(
	"WithdrawAssignmentCommand must be created via NewWithdrawAssignmentCommand constructor",
)

// WithdrawAssignmentCommand represents a carrier backing out of an accepted
// assignment before loading starts.
type WithdrawAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	carrierID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewWithdrawAssignmentCommand creates a withdrawal command.
func NewWithdrawAssignmentCommand(assignmentID, carrierID kernel.UUID) (WithdrawAssignmentCommand, error) {
	if err := errors.Join(
		assignmentID.Validate(),
		carrierID.Validate(),
	); err != nil {
		return WithdrawAssignmentCommand{}, err
	}

	return WithdrawAssignmentCommand{
		assignmentID: assignmentID,
		carrierID:    carrierID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the assignment to withdraw from.
func (c WithdrawAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// CarrierID returns the withdrawing carrier.
func (c WithdrawAssignmentCommand) CarrierID() kernel.UUID {
	return c.carrierID
}
