// Package history contains the write-once snapshot record persisted for
// audit and reporting when an assignment completes. Snapshots are owned by
// no mutable party: the store merges partial records on conflict and never
// mutates the live freight or assignment.
package history

import (
	"time"

	"freightbroker/internal/core/domain/model/assignment"
	"freightbroker/internal/core/domain/model/kernel"
)

// Snapshot is an immutable copy of an assignment's final state plus its
// lifecycle timestamps. Each triggering event (delivery confirmation,
// producer payment mark, driver payment confirmation) supplies only the
// fields it knows; the store merges on conflict keyed by AssignmentID, so
// repeated writes never duplicate or overwrite recorded facts.
type Snapshot struct {
	AssignmentID kernel.UUID
	FreightID    kernel.UUID
	CarrierID    kernel.UUID
	AgreedPrice  kernel.Money
	FinalStatus  assignment.Status

	DeliveryConfirmedAt          *time.Time
	PaymentConfirmedByProducerAt *time.Time
	PaymentConfirmedByDriverAt   *time.Time
}

// SnapshotOf captures the assignment's currently known facts. Timestamps the
// assignment has not recorded yet stay nil and are filled by later merges.
func SnapshotOf(a *assignment.Assignment) (Snapshot, error) {
	if err := a.Validate(); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		AssignmentID:                 a.ID(),
		FreightID:                    a.FreightID(),
		CarrierID:                    a.CarrierID(),
		AgreedPrice:                  a.AgreedPrice(),
		FinalStatus:                  a.Status(),
		DeliveryConfirmedAt:          a.DeliveryConfirmedAt(),
		PaymentConfirmedByProducerAt: a.PaymentConfirmedByProducerAt(),
		PaymentConfirmedByDriverAt:   a.PaymentConfirmedByDriverAt(),
	}, nil
}
