package notify

import (
	"context"
	"log/slog"

	"freightbroker/internal/core/domain/model/kernel"
)

// SlogPayoutLedger records withdrawal fee charges in the structured log.
// A production deployment replaces it with the billing integration; the
// contract stays the same because the charge is post-commit either way.
type SlogPayoutLedger struct {
	logger *slog.Logger
}

// NewSlogPayoutLedger creates a ledger writing to the given logger.
func NewSlogPayoutLedger(logger *slog.Logger) *SlogPayoutLedger {
	return &SlogPayoutLedger{logger: logger.With("component", "payout_ledger")}
}

// RecordWithdrawalFee charges the carrier the paid withdrawal fee.
func (l *SlogPayoutLedger) RecordWithdrawalFee(
	ctx context.Context,
	carrierID, assignmentID kernel.UUID,
	fee kernel.Money,
) error {
	l.logger.InfoContext(ctx, "withdrawal fee recorded",
		"carrierId", carrierID.String(),
		"assignmentId", assignmentID.String(),
		"fee", fee.String(),
	)
	return nil
}
