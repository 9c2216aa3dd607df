package commands

import (
	"errors"

	"freightbroker/internal/core/domain/model/assignment"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/errs"
	"freightbroker/internal/pkg/guard"
)

var ErrTransitionAssignmentCommandIsNotConstructed = errors.New(
	"TransitionAssignmentCommand must be created via NewTransitionAssignmentCommand constructor",
)

// TransitionAssignmentCommand represents a request to move an assignment
// along the delivery state machine. The carrier drives the movement states;
// the freight's requester confirms the final delivery.
type TransitionAssignmentCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	actorID      kernel.UUID
	target       assignment.Status

	guard guard.ConstructorGuard
}

// NewTransitionAssignmentCommand creates a transition command. The target
// must be a forward delivery state; withdrawal has its own command.
func NewTransitionAssignmentCommand(
	assignmentID, actorID kernel.UUID,
	target assignment.Status,
) (TransitionAssignmentCommand, error) {
	cmd := TransitionAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setIdentifiers(assignmentID, actorID),
		cmd.setTarget(target),
	); err != nil {
		return TransitionAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrTransitionAssignmentCommandIsNotConstructed)
}

// AssignmentID returns the assignment to transition.
func (c TransitionAssignmentCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// ActorID returns the acting party.
func (c TransitionAssignmentCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Target returns the requested delivery state.
func (c TransitionAssignmentCommand) Target() assignment.Status {
	return c.target
}

func (c *TransitionAssignmentCommand) setIdentifiers(assignmentID, actorID kernel.UUID) error {
	if err := errors.Join(assignmentID.Validate(), actorID.Validate()); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	c.actorID = actorID
	return nil
}

func (c *TransitionAssignmentCommand) setTarget(target assignment.Status) error {
	switch target {
	case assignment.Loading, assignment.Loaded, assignment.InTransit,
		assignment.DeliveredPendingConfirmation, assignment.Delivered:
	default:
		return errs.NewValueIsInvalidError("target status")
	}

	c.target = target
	return nil
}
