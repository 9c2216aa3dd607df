package commands

import (
	"context"
	"log/slog"

	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/ports"
	"freightbroker/internal/pkg/errs"
)

// WithdrawAssignmentResult reports the outcome of a withdrawal.
type WithdrawAssignmentResult struct {
	FreedSlot bool
}

// WithdrawAssignmentCommandHandler handles paid withdrawal. The slot is
// released inside the transaction; the withdrawal fee is charged on the
// payout ledger only after commit, so a failed charge never keeps a slot
// blocked.
type WithdrawAssignmentCommandHandler struct {
	uowFactory    DeliveryUoWFactory
	notifier      ports.NotificationSink
	payouts       ports.PayoutLedger
	withdrawalFee kernel.Money
	logger        *slog.Logger
}

// NewWithdrawAssignmentCommandHandler creates a handler for carrier
// withdrawals charging the given fixed fee.
func NewWithdrawAssignmentCommandHandler(
	uowFactory DeliveryUoWFactory,
	notifier ports.NotificationSink,
	payouts ports.PayoutLedger,
	withdrawalFee kernel.Money,
	logger *slog.Logger,
) WithdrawAssignmentCommandHandler {
	return WithdrawAssignmentCommandHandler{
		uowFactory:    uowFactory,
		notifier:      notifier,
		payouts:       payouts,
		withdrawalFee: withdrawalFee,
		logger:        logger,
	}
}

// Handle processes the withdrawal command. Withdrawal is only valid while
// the assignment is still in Accepted; single-truck freights release the
// driver link and reopen.
func (h WithdrawAssignmentCommandHandler) Handle(
	ctx context.Context, cmd WithdrawAssignmentCommand,
) (WithdrawAssignmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return WithdrawAssignmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return WithdrawAssignmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()
	freightRepo := uow.FreightRepository()

	asg, err := assignmentRepo.Get(ctx, cmd.AssignmentID())
	if err != nil {
		return WithdrawAssignmentResult{}, err
	}

	if !asg.IsOwnedByCarrier(cmd.CarrierID()) {
		return WithdrawAssignmentResult{}, errs.NewObjectForbiddenError("assignment", cmd.CarrierID().String())
	}

	if err = asg.Withdraw(); err != nil {
		return WithdrawAssignmentResult{}, err
	}

	fr, err := freightRepo.Get(ctx, asg.FreightID())
	if err != nil {
		return WithdrawAssignmentResult{}, err
	}

	if err = assignmentRepo.Update(ctx, asg); err != nil {
		return WithdrawAssignmentResult{}, err
	}

	if err = freightRepo.ReleaseSlot(ctx, fr.ID()); err != nil {
		return WithdrawAssignmentResult{}, err
	}

	if fr.IsSingleTruck() {
		if err = freightRepo.ClearDriver(ctx, fr.ID(), cmd.CarrierID()); err != nil {
			return WithdrawAssignmentResult{}, err
		}
		if err = freightRepo.UpdateStatus(ctx, fr.ID(), freight.Open); err != nil {
			return WithdrawAssignmentResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return WithdrawAssignmentResult{}, err
	}

	if err = h.payouts.RecordWithdrawalFee(ctx, cmd.CarrierID(), asg.ID(), h.withdrawalFee); err != nil {
		h.logger.WarnContext(ctx, "withdrawal fee charge failed",
			"assignmentId", asg.ID().String(),
			"carrierId", cmd.CarrierID().String(),
			"fee", h.withdrawalFee.String(),
			"error", err,
		)
	}
	h.notifier.AssignmentWithdrawn(ctx, fr.ID(), cmd.CarrierID())

	return WithdrawAssignmentResult{FreedSlot: true}, nil
}
