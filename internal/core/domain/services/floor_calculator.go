package services

import (
	"context"
	"errors"

	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/errs"
)

// RateSource is the read-only rate table the floor computation consults.
// Lookup returns an ObjectNotFoundError when no row exists for the exact
// (category, axles, tier) combination.
type RateSource interface {
	Lookup(ctx context.Context, category freight.CargoCategory, axleCount int, tier freight.TableTier) (freight.Rate, error)
}

// FloorCalculator computes the regulatory minimum per-truck price:
//
//	floor = rate_per_km(category, axles, tier) × distance_km + fixed_charge(category, axles, tier)
//
// rounded to two decimal places. The floor applies per truck and is never
// divided by the fleet size: a freight requiring four trucks has four
// independent floors.
type FloorCalculator struct {
	rates RateSource
}

// NewFloorCalculator creates a calculator over the given rate source.
func NewFloorCalculator(rates RateSource) FloorCalculator {
	return FloorCalculator{rates: rates}
}

// FloorFor computes the per-truck floor for the freight's rate keys.
//
// When no rate row exists for the exact category, the calculation falls back
// to the general-cargo row at the same axle/tier combination. When that row
// is also missing the floor is undefined: FloorFor returns (nil, nil) and the
// caller must treat the freight as not floor-enforceable, never as having a
// zero floor. Other lookup failures are returned as errors.
func (c FloorCalculator) FloorFor(
	ctx context.Context,
	category freight.CargoCategory,
	axleCount int,
	tier freight.TableTier,
	distanceKM float64,
) (*kernel.Money, error) {
	rate, err := c.rates.Lookup(ctx, category, axleCount, tier)
	if errors.Is(err, errs.ErrObjectNotFound) && category != freight.CategoryGeneral {
		rate, err = c.rates.Lookup(ctx, freight.CategoryGeneral, axleCount, tier)
	}
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	floor, err := kernel.NewMoneyFromFloat(rate.CostPerKM*distanceKM + rate.FixedCharge)
	if err != nil {
		return nil, err
	}
	return &floor, nil
}
