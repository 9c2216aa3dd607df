package commands

import (
	"errors"

	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/guard"
)

var ErrConfirmPaymentReceivedCommandIsNotConstructed = errors.New(
	"ConfirmPaymentReceivedCommand must be created via NewConfirmPaymentReceivedCommand constructor",
)

// ConfirmPaymentReceivedCommand is the driver side of the payment handshake:
// the assignment's carrier confirms the payment arrived.
type ConfirmPaymentReceivedCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	carrierID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPaymentReceivedCommand creates a driver-side payment confirmation.
func NewConfirmPaymentReceivedCommand(assignmentID, carrierID kernel.UUID) (ConfirmPaymentReceivedCommand, error) {
	if err := errors.Join(
		assignmentID.Validate(),
		carrierID.Validate(),
	); err != nil {
		return ConfirmPaymentReceivedCommand{}, err
	}

	return ConfirmPaymentReceivedCommand{
		assignmentID: assignmentID,
		carrierID:    carrierID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentReceivedCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentReceivedCommandIsNotConstructed)
}

// AssignmentID returns the assignment that was paid.
func (c ConfirmPaymentReceivedCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// CarrierID returns the confirming carrier.
func (c ConfirmPaymentReceivedCommand) CarrierID() kernel.UUID {
	return c.carrierID
}
