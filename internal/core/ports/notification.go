package ports

import (
	"context"

	"freightbroker/internal/core/domain/model/kernel"
)

// NotificationSink receives business events for delivery to interested
// parties. Notification failures never fail the business transaction; sinks
// are invoked after commit.
type NotificationSink interface {
	// ProposalAccepted announces that a carrier filled a slot on a freight.
	ProposalAccepted(ctx context.Context, freightID, carrierID kernel.UUID, remainingSlots int)

	// AssignmentWithdrawn announces that a carrier withdrew and freed a slot.
	AssignmentWithdrawn(ctx context.Context, freightID, carrierID kernel.UUID)

	// DeliveryConfirmed announces that the requester confirmed a delivery.
	DeliveryConfirmed(ctx context.Context, freightID, carrierID kernel.UUID)
}

// PayoutLedger records monetary side effects of the allocation protocol that
// settle outside the engine, such as withdrawal fees charged to carriers.
type PayoutLedger interface {
	// RecordWithdrawalFee charges the carrier the paid withdrawal fee. Called
	// after the withdrawal transaction commits; the slot is already freed
	// whether or not the charge succeeds.
	RecordWithdrawalFee(ctx context.Context, carrierID, assignmentID kernel.UUID, fee kernel.Money) error
}
