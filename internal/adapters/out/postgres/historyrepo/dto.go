// Package historyrepo persists completion snapshots. Snapshots are keyed by
// assignment and merged on conflict: each triggering event fills in only the
// timestamps it knows, and a merge never clears a fact an earlier merge
// recorded.
package historyrepo

import (
	"time"

	"freightbroker/internal/core/domain/model/history"

	"github.com/google/uuid"
)

// SnapshotDTO represents the database structure for completion snapshots.
type SnapshotDTO struct {
	AssignmentID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	FreightID        uuid.UUID `gorm:"type:uuid;index"`
	CarrierID        uuid.UUID `gorm:"type:uuid;index"`
	AgreedPriceCents int64     `gorm:"column:agreed_price_cents"`
	FinalStatus      string    `gorm:"column:final_status"`

	DeliveryConfirmedAt          *time.Time
	PaymentConfirmedByProducerAt *time.Time
	PaymentConfirmedByDriverAt   *time.Time
}

// TableName specifies the database table name for snapshot records.
func (SnapshotDTO) TableName() string {
	return "assignment_history"
}

func fromDomain(snapshot history.Snapshot) SnapshotDTO {
	return SnapshotDTO{
		AssignmentID:                 snapshot.AssignmentID.Bytes(),
		FreightID:                    snapshot.FreightID.Bytes(),
		CarrierID:                    snapshot.CarrierID.Bytes(),
		AgreedPriceCents:             snapshot.AgreedPrice.Cents(),
		FinalStatus:                  snapshot.FinalStatus.String(),
		DeliveryConfirmedAt:          snapshot.DeliveryConfirmedAt,
		PaymentConfirmedByProducerAt: snapshot.PaymentConfirmedByProducerAt,
		PaymentConfirmedByDriverAt:   snapshot.PaymentConfirmedByDriverAt,
	}
}
