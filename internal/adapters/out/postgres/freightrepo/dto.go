// Package freightrepo provides data transfer objects and mapping functions
// for freight persistence. It implements the repository pattern for the
// freight aggregate and owns the predicate-guarded updates that keep the slot
// counter and the driver link race free.
package freightrepo

import (
	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// FreightDTO represents the database structure for persisting freight
// aggregates. Statuses and enumeration columns store wire names so the raw
// read queries and the partial indexes can match on plain strings.
type FreightDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RequesterID    uuid.UUID  `gorm:"type:uuid;index"`
	RequiredTrucks int        `gorm:"column:required_trucks"`
	AcceptedTrucks int        `gorm:"column:accepted_trucks"`
	Status         string     `gorm:"index"`
	DriverID       *uuid.UUID `gorm:"type:uuid"`

	PricingType      string  `gorm:"column:pricing_type"`
	PriceCents       *int64  `gorm:"column:price_cents"`
	PricePerKMCents  *int64  `gorm:"column:price_per_km_cents"`
	PricePerTonCents *int64  `gorm:"column:price_per_ton_cents"`
	WeightKG         float64 `gorm:"column:weight_kg"`
	DistanceKM       float64 `gorm:"column:distance_km"`

	CargoCategory     string `gorm:"column:cargo_category"`
	AxleCount         int    `gorm:"column:axle_count"`
	TableTier         string `gorm:"column:table_tier"`
	MinimumFloorCents *int64 `gorm:"column:minimum_floor_cents"`
}

// TableName specifies the database table name for freight entities.
func (FreightDTO) TableName() string {
	return "freights"
}

func fromDomain(aggregate *freight.Freight) FreightDTO {
	var driverID *uuid.UUID
	if id := aggregate.Driver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	pricing := aggregate.Pricing()

	return FreightDTO{
		ID:                aggregate.ID().Bytes(),
		RequesterID:       aggregate.RequesterID().Bytes(),
		RequiredTrucks:    aggregate.RequiredTrucks(),
		AcceptedTrucks:    aggregate.AcceptedTrucks(),
		Status:            aggregate.Status().String(),
		DriverID:          driverID,
		PricingType:       pricing.Type().String(),
		PriceCents:        moneyCents(pricing.Price()),
		PricePerKMCents:   moneyCents(pricing.PricePerKM()),
		PricePerTonCents:  moneyCents(pricing.PricePerTon()),
		WeightKG:          pricing.WeightKG(),
		DistanceKM:        pricing.DistanceKM(),
		CargoCategory:     string(aggregate.CargoCategory()),
		AxleCount:         aggregate.AxleCount(),
		TableTier:         string(aggregate.TableTier()),
		MinimumFloorCents: moneyCents(aggregate.MinimumFloor()),
	}
}

func toDomain(dto FreightDTO) (*freight.Freight, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	requesterID, err := kernel.UUIDFromBytes(dto.RequesterID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := freight.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pricingType, err := freight.PricingTypeFromString(dto.PricingType)
	if err != nil {
		return nil, err
	}
	price, err := centsMoney(dto.PriceCents)
	if err != nil {
		return nil, err
	}
	pricePerKM, err := centsMoney(dto.PricePerKMCents)
	if err != nil {
		return nil, err
	}
	pricePerTon, err := centsMoney(dto.PricePerTonCents)
	if err != nil {
		return nil, err
	}
	pricing, err := freight.RestorePricing(pricingType, price, pricePerKM, pricePerTon, dto.WeightKG, dto.DistanceKM)
	if err != nil {
		return nil, err
	}

	minimumFloor, err := centsMoney(dto.MinimumFloorCents)
	if err != nil {
		return nil, err
	}

	return freight.RestoreFreight(
		id,
		requesterID,
		dto.RequiredTrucks,
		dto.AcceptedTrucks,
		status,
		driverID,
		pricing,
		freight.CargoCategory(dto.CargoCategory),
		dto.AxleCount,
		freight.TableTier(dto.TableTier),
		minimumFloor,
	)
}

func moneyCents(m *kernel.Money) *int64 {
	if m == nil {
		return nil
	}
	cents := m.Cents()
	return &cents
}

func centsMoney(cents *int64) (*kernel.Money, error) {
	if cents == nil {
		return nil, nil
	}
	m, err := kernel.NewMoneyFromCents(*cents)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
