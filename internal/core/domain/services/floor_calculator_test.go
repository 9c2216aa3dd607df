package services_test

import (
	"context"
	"errors"
	"testing"

	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/services"
	"freightbroker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rateKey struct {
	category freight.CargoCategory
	axles    int
	tier     freight.TableTier
}

// stubRateSource serves rate rows from a map; missing keys return the
// not-found classification the calculator falls back on.
type stubRateSource struct {
	rates map[rateKey]freight.Rate
	err   error
}

func (s *stubRateSource) Lookup(
	_ context.Context, category freight.CargoCategory, axleCount int, tier freight.TableTier,
) (freight.Rate, error) {
	if s.err != nil {
		return freight.Rate{}, s.err
	}
	rate, ok := s.rates[rateKey{category, axleCount, tier}]
	if !ok {
		return freight.Rate{}, errs.NewObjectNotFoundError("rate", string(category))
	}
	return rate, nil
}

func TestFloorCalculator_FloorFor(t *testing.T) {
	ctx := context.Background()

	t.Run("should compute floor from exact rate row", func(t *testing.T) {
		source := &stubRateSource{rates: map[rateKey]freight.Rate{
			{freight.CategoryDangerous, 5, freight.TierStandard}: {CostPerKM: 4.50, FixedCharge: 200},
		}}
		calculator := services.NewFloorCalculator(source)

		floor, err := calculator.FloorFor(ctx, freight.CategoryDangerous, 5, freight.TierStandard, 100)

		require.NoError(t, err)
		require.NotNil(t, floor)
		// 4.50 * 100 + 200 = 650.00
		assert.Equal(t, int64(65000), floor.Cents())
	})

	t.Run("should fall back to general cargo row when exact category is missing", func(t *testing.T) {
		source := &stubRateSource{rates: map[rateKey]freight.Rate{
			{freight.CategoryGeneral, 6, freight.TierHighPerformance}: {CostPerKM: 3.00, FixedCharge: 150},
		}}
		calculator := services.NewFloorCalculator(source)

		floor, err := calculator.FloorFor(ctx, freight.CategoryRefrigerated, 6, freight.TierHighPerformance, 200)

		require.NoError(t, err)
		require.NotNil(t, floor)
		// 3.00 * 200 + 150 = 750.00
		assert.Equal(t, int64(75000), floor.Cents())
	})

	t.Run("should report not enforceable when both rows are missing", func(t *testing.T) {
		calculator := services.NewFloorCalculator(&stubRateSource{rates: map[rateKey]freight.Rate{}})

		floor, err := calculator.FloorFor(ctx, freight.CategorySolidBulk, 4, freight.TierStandard, 300)

		require.NoError(t, err)
		assert.Nil(t, floor, "missing rate must mean no floor, never a zero floor")
	})

	t.Run("should report not enforceable when general cargo itself has no row", func(t *testing.T) {
		calculator := services.NewFloorCalculator(&stubRateSource{rates: map[rateKey]freight.Rate{}})

		floor, err := calculator.FloorFor(ctx, freight.CategoryGeneral, 4, freight.TierStandard, 300)

		require.NoError(t, err)
		assert.Nil(t, floor)
	})

	t.Run("should round the floor to two decimal places", func(t *testing.T) {
		source := &stubRateSource{rates: map[rateKey]freight.Rate{
			{freight.CategoryGeneral, 3, freight.TierStandard}: {CostPerKM: 2.333, FixedCharge: 0},
		}}
		calculator := services.NewFloorCalculator(source)

		floor, err := calculator.FloorFor(ctx, freight.CategoryGeneral, 3, freight.TierStandard, 3)

		require.NoError(t, err)
		require.NotNil(t, floor)
		// 2.333 * 3 = 6.999, rounds to 7.00
		assert.Equal(t, int64(700), floor.Cents())
	})

	t.Run("should propagate lookup failures that are not not-found", func(t *testing.T) {
		lookupErr := errors.New("connection reset")
		calculator := services.NewFloorCalculator(&stubRateSource{err: lookupErr})

		floor, err := calculator.FloorFor(ctx, freight.CategoryLiquidBulk, 7, freight.TierStandard, 50)

		require.Error(t, err)
		assert.Nil(t, floor)
		require.ErrorIs(t, err, lookupErr)
	})
}
