// Package notify contains the outbound notification adapters. The engine
// treats notifications as fire-and-forget: they run after commit and their
// failure never fails the business transaction.
package notify

import (
	"context"
	"log/slog"

	"freightbroker/internal/core/domain/model/kernel"
)

// SlogNotificationSink writes business events to the structured log. It
// stands in for a real messaging integration and keeps the event contract
// exercised end to end.
type SlogNotificationSink struct {
	logger *slog.Logger
}

// NewSlogNotificationSink creates a sink writing to the given logger.
func NewSlogNotificationSink(logger *slog.Logger) *SlogNotificationSink {
	return &SlogNotificationSink{logger: logger.With("component", "notification_sink")}
}

// ProposalAccepted announces that a carrier filled a slot on a freight.
func (s *SlogNotificationSink) ProposalAccepted(
	ctx context.Context,
	freightID, carrierID kernel.UUID,
	remainingSlots int,
) {
	s.logger.InfoContext(ctx, "proposal accepted",
		"freightId", freightID.String(),
		"carrierId", carrierID.String(),
		"remainingSlots", remainingSlots,
	)
}

// AssignmentWithdrawn announces that a carrier withdrew and freed a slot.
func (s *SlogNotificationSink) AssignmentWithdrawn(ctx context.Context, freightID, carrierID kernel.UUID) {
	s.logger.InfoContext(ctx, "assignment withdrawn",
		"freightId", freightID.String(),
		"carrierId", carrierID.String(),
	)
}

// DeliveryConfirmed announces that the requester confirmed a delivery.
func (s *SlogNotificationSink) DeliveryConfirmed(ctx context.Context, freightID, carrierID kernel.UUID) {
	s.logger.InfoContext(ctx, "delivery confirmed",
		"freightId", freightID.String(),
		"carrierId", carrierID.String(),
	)
}
