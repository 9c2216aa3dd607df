package queries

import (
	"context"
	"database/sql"
	"errors"

	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// freightRow is the raw shape of one freights row as scanned from SQL.
// Both status and quote queries need the full aggregate, so the mapping
// into the domain model lives here instead of in each handler.
type freightRow struct {
	id               uuid.UUID
	requesterID      uuid.UUID
	requiredTrucks   int
	acceptedTrucks   int
	status           string
	driverID         uuid.NullUUID
	pricingType      string
	priceCents       sql.NullInt64
	pricePerKMCents  sql.NullInt64
	pricePerTonCents sql.NullInt64
	weightKG         float64
	distanceKM       float64
	cargoCategory    string
	axleCount        int
	tableTier        string
	minFloorCents    sql.NullInt64
}

const selectFreightByID = `
	SELECT
		id,
		requester_id,
		required_trucks,
		accepted_trucks,
		status,
		driver_id,
		pricing_type,
		price_cents,
		price_per_km_cents,
		price_per_ton_cents,
		weight_kg,
		distance_km,
		cargo_category,
		axle_count,
		table_tier,
		minimum_floor_cents
	FROM freights
	WHERE id = ?
`

// readFreightRow loads one freight aggregate by identifier.
// Returns a NOT_FOUND error when no row exists.
func readFreightRow(ctx context.Context, db *gorm.DB, freightID kernel.UUID) (*freight.Freight, error) {
	row := db.WithContext(ctx).Raw(selectFreightByID, freightID.Bytes()).Row()

	var r freightRow
	err := row.Scan(
		&r.id,
		&r.requesterID,
		&r.requiredTrucks,
		&r.acceptedTrucks,
		&r.status,
		&r.driverID,
		&r.pricingType,
		&r.priceCents,
		&r.pricePerKMCents,
		&r.pricePerTonCents,
		&r.weightKG,
		&r.distanceKM,
		&r.cargoCategory,
		&r.axleCount,
		&r.tableTier,
		&r.minFloorCents,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("freight", freightID.String())
	}
	if err != nil {
		return nil, err
	}

	return r.toDomain()
}

func (r freightRow) toDomain() (*freight.Freight, error) {
	id, err := kernel.UUIDFromBytes(r.id[:])
	if err != nil {
		return nil, err
	}
	requesterID, err := kernel.UUIDFromBytes(r.requesterID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if r.driverID.Valid {
		parsed, idErr := kernel.UUIDFromBytes(r.driverID.UUID[:])
		if idErr != nil {
			return nil, idErr
		}
		driverID = &parsed
	}

	status, err := freight.StatusFromString(r.status)
	if err != nil {
		return nil, err
	}

	pricingType, err := freight.PricingTypeFromString(r.pricingType)
	if err != nil {
		return nil, err
	}
	price, err := nullableMoney(r.priceCents)
	if err != nil {
		return nil, err
	}
	pricePerKM, err := nullableMoney(r.pricePerKMCents)
	if err != nil {
		return nil, err
	}
	pricePerTon, err := nullableMoney(r.pricePerTonCents)
	if err != nil {
		return nil, err
	}
	pricing, err := freight.RestorePricing(pricingType, price, pricePerKM, pricePerTon, r.weightKG, r.distanceKM)
	if err != nil {
		return nil, err
	}

	minimumFloor, err := nullableMoney(r.minFloorCents)
	if err != nil {
		return nil, err
	}

	return freight.RestoreFreight(
		id,
		requesterID,
		r.requiredTrucks,
		r.acceptedTrucks,
		status,
		driverID,
		pricing,
		freight.CargoCategory(r.cargoCategory),
		r.axleCount,
		freight.TableTier(r.tableTier),
		minimumFloor,
	)
}

func nullableMoney(v sql.NullInt64) (*kernel.Money, error) {
	if !v.Valid {
		return nil, nil
	}
	m, err := kernel.NewMoneyFromCents(v.Int64)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
