package commands

import (
	"context"
	"time"

	"freightbroker/internal/core/domain/model/history"
	"freightbroker/internal/pkg/errs"
)

// ConfirmPaymentReceivedCommandHandler records the driver-side payment
// confirmation and merges it into the history snapshot. Once both sides have
// confirmed, the assignment becomes ratable.
type ConfirmPaymentReceivedCommandHandler struct {
	uowFactory DeliveryUoWFactory
	now        func() time.Time
}

// NewConfirmPaymentReceivedCommandHandler creates a handler for driver-side
// payment confirmations.
func NewConfirmPaymentReceivedCommandHandler(uowFactory DeliveryUoWFactory) ConfirmPaymentReceivedCommandHandler {
	return ConfirmPaymentReceivedCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the driver-side confirmation. The actor must be the
// assignment's carrier.
func (h ConfirmPaymentReceivedCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentReceivedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()

	asg, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	if !asg.IsOwnedByCarrier(cmd.CarrierID()) {
		return errs.NewObjectForbiddenError("assignment", cmd.CarrierID().String())
	}

	if err = asg.ConfirmPaymentByDriver(h.now()); err != nil {
		return err
	}

	if err = assignmentRepo.Update(ctx, asg); err != nil {
		return err
	}

	snapshot, err := history.SnapshotOf(asg)
	if err != nil {
		return err
	}
	if err = uow.HistoryRepository().Merge(ctx, snapshot); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
