// Package proposalrepo provides data transfer objects and mapping functions
// for proposal persistence.
package proposalrepo

import (
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/domain/model/proposal"

	"github.com/google/uuid"
)

// ProposalDTO represents the database structure for persisting proposals.
type ProposalDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FreightID  uuid.UUID `gorm:"type:uuid;index"`
	CarrierID  uuid.UUID `gorm:"type:uuid;index"`
	PriceCents int64     `gorm:"column:price_cents"`
	Status     string    `gorm:"index"`
}

// TableName specifies the database table name for proposal entities.
func (ProposalDTO) TableName() string {
	return "proposals"
}

func fromDomain(aggregate *proposal.Proposal) ProposalDTO {
	return ProposalDTO{
		ID:         aggregate.ID().Bytes(),
		FreightID:  aggregate.FreightID().Bytes(),
		CarrierID:  aggregate.CarrierID().Bytes(),
		PriceCents: aggregate.Price().Cents(),
		Status:     aggregate.Status().String(),
	}
}

func toDomain(dto ProposalDTO) (*proposal.Proposal, error) {
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

	price, err := kernel.NewMoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	status, err := proposal.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return proposal.RestoreProposal(id, freightID, carrierID, price, status)
}
