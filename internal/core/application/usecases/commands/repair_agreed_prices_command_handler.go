package commands

import (
	"context"
	"log/slog"
)

// RepairAgreedPricesCommandHandler overwrites drifted agreed prices with the
// originating proposal's price, keeping the prior value for audit. Rows
// already carrying the correct price are not selected, so repeated runs are
// idempotent.
type RepairAgreedPricesCommandHandler struct {
	uowFactory DeliveryUoWFactory
	logger     *slog.Logger
}

// NewRepairAgreedPricesCommandHandler creates a handler for the batch
// agreed-price repair.
func NewRepairAgreedPricesCommandHandler(
	uowFactory DeliveryUoWFactory,
	logger *slog.Logger,
) RepairAgreedPricesCommandHandler {
	return RepairAgreedPricesCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle runs the repair and returns the number of assignments rewritten.
// Every row is logged before it is changed.
func (h RepairAgreedPricesCommandHandler) Handle(ctx context.Context, cmd RepairAgreedPricesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignmentRepo := uow.AssignmentRepository()

	mismatches, err := assignmentRepo.GetPriceMismatches(ctx)
	if err != nil {
		return 0, err
	}

	for _, mismatch := range mismatches {
		h.logger.InfoContext(ctx, "repairing agreed price",
			"assignmentId", mismatch.AssignmentID.String(),
			"storedPrice", mismatch.AgreedPrice.String(),
			"proposalPrice", mismatch.ProposalPrice.String(),
		)

		if err = assignmentRepo.RepairAgreedPrice(
			ctx, mismatch.AssignmentID, mismatch.ProposalPrice, mismatch.AgreedPrice,
		); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(mismatches), nil
}
