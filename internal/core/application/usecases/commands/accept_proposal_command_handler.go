package commands

import (
	"context"
	"fmt"
	"time"

	"freightbroker/internal/core/domain/model/assignment"
	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/ports"
	"freightbroker/internal/pkg/errs"
)

// AcceptProposalResult reports the outcome of a successful acceptance.
type AcceptProposalResult struct {
	AssignmentID   kernel.UUID
	RemainingSlots int
}

// AcceptProposalCommandHandler implements the capacity allocation protocol.
//
// The ordered checks (ownership, pending proposal, capacity, price, duplicate
// carrier, price floor) run against a transactional read, but none of them is
// what makes allocation safe: the slot itself is taken by a predicate-guarded
// counter increment whose unmatched predicate aborts the whole transaction.
// Two racing acceptances of the last slot both pass the pre-checks and
// exactly one survives the guarded update.
type AcceptProposalCommandHandler struct {
	uowFactory AllocationUoWFactory
	notifier   ports.NotificationSink
	now        func() time.Time
}

// NewAcceptProposalCommandHandler creates a handler for the acceptance
// protocol. Notifications are emitted after commit and never affect the
// outcome.
func NewAcceptProposalCommandHandler(
	uowFactory AllocationUoWFactory,
	notifier ports.NotificationSink,
) AcceptProposalCommandHandler {
	return AcceptProposalCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Handle processes the acceptance command and returns the created assignment
// and the freight's remaining capacity.
//
// Error classification: missing proposal or freight → NOT_FOUND; actor does
// not own the freight → FORBIDDEN; resolved proposal, exhausted capacity,
// duplicate carrier or a lost slot race → CONFLICT; price below an
// enforceable floor → VALIDATION. A price exactly at the floor is accepted.
func (h AcceptProposalCommandHandler) Handle(
	ctx context.Context, cmd AcceptProposalCommand,
) (AcceptProposalResult, error) {
	if err := cmd.Validate(); err != nil {
		return AcceptProposalResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AcceptProposalResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	freightRepo := uow.FreightRepository()
	proposalRepo := uow.ProposalRepository()
	assignmentRepo := uow.AssignmentRepository()

	prop, err := proposalRepo.Get(ctx, cmd.ProposalID())
	if err != nil {
		return AcceptProposalResult{}, err
	}

	fr, err := freightRepo.Get(ctx, prop.FreightID())
	if err != nil {
		return AcceptProposalResult{}, err
	}

	if !fr.IsOwnedBy(cmd.RequesterID()) {
		return AcceptProposalResult{}, errs.NewObjectForbiddenError("freight", cmd.RequesterID().String())
	}

	if !prop.IsPending() {
		return AcceptProposalResult{}, errs.NewConflictErrorWithCause("proposal", prop.ID().String(),
			fmt.Errorf("proposal is already %s", prop.Status()))
	}

	if !fr.HasCapacity() {
		return AcceptProposalResult{}, errs.NewConflictErrorWithCause("freight", fr.ID().String(),
			fmt.Errorf("all %d truck slots are filled", fr.RequiredTrucks()))
	}

	if !prop.Price().IsPositive() {
		return AcceptProposalResult{}, errs.NewValueIsInvalidError("proposedPrice must be greater than zero")
	}

	hasActive, err := assignmentRepo.ActiveExists(ctx, fr.ID(), prop.CarrierID())
	if err != nil {
		return AcceptProposalResult{}, err
	}
	if hasActive {
		return AcceptProposalResult{}, errs.NewConflictErrorWithCause("assignment", prop.CarrierID().String(),
			fmt.Errorf("carrier already holds an active assignment on freight %s", fr.ID()))
	}

	if fr.FloorEnforceable() && prop.Price().LessThan(*fr.MinimumFloor()) {
		return AcceptProposalResult{}, errs.NewValueIsInvalidErrorWithCause("proposedPrice",
			fmt.Errorf("price %s is below the minimum floor %s", prop.Price(), fr.MinimumFloor()))
	}

	// The agreed price is the proposal's full per-truck price, never the
	// freight price divided by the fleet size.
	newAssignment, err := assignment.NewAssignment(
		kernel.NewUUID(), fr.ID(), prop.CarrierID(), prop.ID(),
		prop.Price(), h.now(),
	)
	if err != nil {
		return AcceptProposalResult{}, err
	}

	if err = assignmentRepo.Add(ctx, newAssignment); err != nil {
		return AcceptProposalResult{}, err
	}

	accepted, err := freightRepo.ReserveSlot(ctx, fr.ID())
	if err != nil {
		return AcceptProposalResult{}, err
	}

	if fr.IsSingleTruck() {
		if err = freightRepo.BindDriver(ctx, fr.ID(), prop.CarrierID()); err != nil {
			return AcceptProposalResult{}, err
		}
		if err = freightRepo.UpdateStatus(ctx, fr.ID(), freight.Accepted); err != nil {
			return AcceptProposalResult{}, err
		}
	}

	if err = prop.Accept(); err != nil {
		return AcceptProposalResult{}, err
	}
	if err = proposalRepo.Update(ctx, prop); err != nil {
		return AcceptProposalResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AcceptProposalResult{}, err
	}

	// Remaining capacity comes from the counter the guarded update produced,
	// not from the aggregate read at the start of the transaction: a
	// concurrent acceptance may have committed in between.
	remaining := fr.RequiredTrucks() - accepted
	h.notifier.ProposalAccepted(ctx, fr.ID(), prop.CarrierID(), remaining)

	return AcceptProposalResult{
		AssignmentID:   newAssignment.ID(),
		RemainingSlots: remaining,
	}, nil
}
