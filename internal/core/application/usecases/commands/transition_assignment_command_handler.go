package commands

import (
	"context"
	"time"

	"freightbroker/internal/core/domain/model/assignment"
	"freightbroker/internal/core/domain/model/history"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/domain/services"
	"freightbroker/internal/core/ports"
	"freightbroker/internal/pkg/errs"
)

// TransitionAssignmentResult reports the assignment state a successful
// transition produced.
type TransitionAssignmentResult struct {
	AssignmentID        kernel.UUID
	FreightID           kernel.UUID
	Status              assignment.Status
	AcceptedAt          time.Time
	DeliveryConfirmedAt *time.Time
}

// TransitionAssignmentCommandHandler advances one truck's delivery state.
// Movement states require the assignment's carrier; the terminal Delivered
// state requires the freight's requester and writes a history snapshot in
// the same transaction.
type TransitionAssignmentCommandHandler struct {
	uowFactory DeliveryUoWFactory
	notifier   ports.NotificationSink
	now        func() time.Time
}

// NewTransitionAssignmentCommandHandler creates a handler for delivery
// transitions.
func NewTransitionAssignmentCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier ports.NotificationSink,
) TransitionAssignmentCommandHandler {
	return TransitionAssignmentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		now:        time.Now,
	}
}

// Handle processes the transition command and returns the assignment state
// after the move. Single-truck freights mirror the new state onto the
// freight's own status column within the transaction.
func (h TransitionAssignmentCommandHandler) Handle(
	ctx context.Context, cmd TransitionAssignmentCommand,
) (TransitionAssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionAssignmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionAssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()
	freightRepo := uow.FreightRepository()

	asg, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return TransitionAssignmentResult{}, err
	}

	fr, err := freightRepo.Get(ctx, asg.FreightID())
	if err != nil {
		return TransitionAssignmentResult{}, err
	}

	delivered := cmd.Target() == assignment.Delivered
	if delivered {
		// Only the requester confirms the delivery the carrier reported.
		if !fr.IsOwnedBy(cmd.ActorID()) {
			return TransitionAssignmentResult{}, errs.NewObjectForbiddenError("freight", cmd.ActorID().String())
		}
		if err = asg.ConfirmDelivery(h.now()); err != nil {
			return TransitionAssignmentResult{}, err
		}
	} else {
		if !asg.IsOwnedByCarrier(cmd.ActorID()) {
			return TransitionAssignmentResult{}, errs.NewObjectForbiddenError("assignment", cmd.ActorID().String())
		}
		if err = asg.AdvanceTo(cmd.Target()); err != nil {
			return TransitionAssignmentResult{}, err
		}
	}

	if err = assignmentRepo.Update(ctx, asg); err != nil {
		return TransitionAssignmentResult{}, err
	}

	if fr.IsSingleTruck() {
		if err = freightRepo.UpdateStatus(ctx, fr.ID(), services.MirrorStatus(asg.Status())); err != nil {
			return TransitionAssignmentResult{}, err
		}
	}

	if delivered {
		snapshot, snapErr := history.SnapshotOf(asg)
		if snapErr != nil {
			return TransitionAssignmentResult{}, snapErr
		}
		if err = uow.HistoryRepository().Merge(ctx, snapshot); err != nil {
			return TransitionAssignmentResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionAssignmentResult{}, err
	}

	if delivered {
		h.notifier.DeliveryConfirmed(ctx, fr.ID(), asg.CarrierID())
	}

	return TransitionAssignmentResult{
		AssignmentID:        asg.ID(),
		FreightID:           fr.ID(),
		Status:              asg.Status(),
		AcceptedAt:          asg.AcceptedAt(),
		DeliveryConfirmedAt: asg.DeliveryConfirmedAt(),
	}, nil
}
