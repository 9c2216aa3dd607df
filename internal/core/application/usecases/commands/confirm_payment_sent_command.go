package commands

import (
	"errors"

	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/guard"
)

var ErrConfirmPaymentSentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentSentCommand must be created via NewConfirmPaymentSentCommand constructor",
)

// ConfirmPaymentSentCommand is the producer side of the payment handshake:
// the freight's requester marks the payment for an assignment as sent.
type ConfirmPaymentSentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	requesterID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmPaymentSentCommand creates a producer-side payment confirmation.
func NewConfirmPaymentSentCommand(assignmentID, requesterID kernel.UUID) (ConfirmPaymentSentCommand, error) {
	if err := errors.Join(
		assignmentID.Validate(),
		requesterID.Validate(),
	); err != nil {
		return ConfirmPaymentSentCommand{}, err
	}

	return ConfirmPaymentSentCommand{
		assignmentID: assignmentID,
		requesterID:  requesterID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentSentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentSentCommandIsNotConstructed)
}

// AssignmentID returns the assignment being paid.
func (c ConfirmPaymentSentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// RequesterID returns the paying requester.
func (c ConfirmPaymentSentCommand) RequesterID() kernel.UUID {
	return c.requesterID
}
