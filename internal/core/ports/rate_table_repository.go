package ports

import (
	"context"

	"freightbroker/internal/core/domain/model/freight"
)

// RateTableRepository defines the read contract over the regulatory rate
// table. It satisfies the floor calculator's rate source.
type RateTableRepository interface {
	// Lookup returns the rate row for the exact (category, axles, tier)
	// combination, or an ObjectNotFoundError when no row exists.
	Lookup(ctx context.Context, category freight.CargoCategory, axleCount int, tier freight.TableTier) (freight.Rate, error)

	// Version identifies the currently loaded edition of the rate table,
	// e.g. its publication date. Recalculation logs it for traceability.
	Version(ctx context.Context) (string, error)
}
