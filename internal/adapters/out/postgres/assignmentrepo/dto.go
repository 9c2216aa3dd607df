// Package assignmentrepo provides data transfer objects and mapping functions
// for assignment persistence. The partial unique index on active
// (freight_id, carrier_id) pairs is the storage-level backstop of the
// duplicate-carrier rule; it is created by the migration helper because GORM
// tags cannot express partial indexes.
package assignmentrepo

import (
	"time"

	"freightbroker/internal/core/domain/model/assignment"
	"freightbroker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for persisting assignments.
// RepairedFromCents is a persistence-only audit column written by the agreed
// price repair job; the domain aggregate does not carry it.
type AssignmentDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	FreightID        uuid.UUID `gorm:"type:uuid;index"`
	CarrierID        uuid.UUID `gorm:"type:uuid;index"`
	ProposalID       uuid.UUID `gorm:"type:uuid"`
	AgreedPriceCents int64     `gorm:"column:agreed_price_cents"`
	Status           string    `gorm:"index"`

	AcceptedAt                   time.Time
	DeliveryConfirmedAt          *time.Time
	PaymentConfirmedByProducerAt *time.Time
	PaymentConfirmedByDriverAt   *time.Time

	RepairedFromCents *int64 `gorm:"column:repaired_from_cents"`
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:                           aggregate.ID().Bytes(),
		FreightID:                    aggregate.FreightID().Bytes(),
		CarrierID:                    aggregate.CarrierID().Bytes(),
		ProposalID:                   aggregate.ProposalID().Bytes(),
		AgreedPriceCents:             aggregate.AgreedPrice().Cents(),
		Status:                       aggregate.Status().String(),
		AcceptedAt:                   aggregate.AcceptedAt(),
		DeliveryConfirmedAt:          aggregate.DeliveryConfirmedAt(),
		PaymentConfirmedByProducerAt: aggregate.PaymentConfirmedByProducerAt(),
		PaymentConfirmedByDriverAt:   aggregate.PaymentConfirmedByDriverAt(),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	freightID, err := kernel.UUIDFromBytes(dto.FreightID[:])
	if err != nil {
		return nil, err
	}
	carrierID, err := kernel.UUIDFromBytes(dto.CarrierID[:])
	if err != nil {
		return nil, err
	}
	proposalID, err := kernel.UUIDFromBytes(dto.ProposalID[:])
	if err != nil {
		return nil, err
	}

	agreedPrice, err := kernel.NewMoneyFromCents(dto.AgreedPriceCents)
	if err != nil {
		return nil, err
	}

	status, err := assignment.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id,
		freightID,
		carrierID,
		proposalID,
		agreedPrice,
		status,
		dto.AcceptedAt,
		dto.DeliveryConfirmedAt,
		dto.PaymentConfirmedByProducerAt,
		dto.PaymentConfirmedByDriverAt,
	)
}
