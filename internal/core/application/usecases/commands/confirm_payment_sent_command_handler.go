package commands

import (
	"context"
	"time"

	"freightbroker/internal/core/domain/model/history"
	"freightbroker/internal/pkg/errs"
)

// ConfirmPaymentSentCommandHandler records the producer-side payment
// confirmation and merges it into the history snapshot. The handshake is
// independent of delivery state; a second confirmation is a VALIDATION error.
type ConfirmPaymentSentCommandHandler struct {
	uowFactory DeliveryUoWFactory
	now        func() time.Time
}

// NewConfirmPaymentSentCommandHandler creates a handler for producer-side
// payment confirmations.
func NewConfirmPaymentSentCommandHandler(uowFactory DeliveryUoWFactory) ConfirmPaymentSentCommandHandler {
	return ConfirmPaymentSentCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the producer-side confirmation. The actor must be the
// requester of the assignment's freight.
func (h ConfirmPaymentSentCommandHandler) Handle(ctx context.Context, cmd ConfirmPaymentSentCommand) error {
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

	fr, err := uow.FreightRepository().Get(ctx, asg.FreightID())
	if err != nil {
		return err
	}
	if !fr.IsOwnedBy(cmd.RequesterID()) {
		return errs.NewObjectForbiddenError("freight", cmd.RequesterID().String())
	}

	if err = asg.ConfirmPaymentByProducer(h.now()); err != nil {
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
