package freight_test

import (
	"testing"

	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedPricing(t *testing.T, cents int64) freight.Pricing {
	t.Helper()
	price, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	pricing, err := freight.NewFixedPricing(price, 12000, 450)
	require.NoError(t, err)
	return pricing
}

func TestNewFreight(t *testing.T) {
	t.Run("creates open freight with no accepted trucks", func(t *testing.T) {
		f, err := freight.NewFreight(
			kernel.NewUUID(), kernel.NewUUID(), 4,
			fixedPricing(t, 100000),
			freight.CategoryGeneral, 5, freight.TierStandard,
		)

		require.NoError(t, err)
		assert.Equal(t, freight.Open, f.Status())
		assert.Equal(t, 4, f.RequiredTrucks())
		assert.Equal(t, 0, f.AcceptedTrucks())
		assert.Equal(t, 4, f.RemainingSlots())
		assert.True(t, f.HasCapacity())
		assert.False(t, f.IsSingleTruck())
		assert.Nil(t, f.Driver())
		assert.False(t, f.FloorEnforceable())
		require.NoError(t, f.Validate())
	})

	t.Run("rejects zero required trucks", func(t *testing.T) {
		_, err := freight.NewFreight(
			kernel.NewUUID(), kernel.NewUUID(), 0,
			fixedPricing(t, 100000),
			freight.CategoryGeneral, 5, freight.TierStandard,
		)

		require.Error(t, err)
		assert.Equal(t, freight.ErrRequiredTrucksIsInvalid, err)
	})

	t.Run("rejects invalid cargo category", func(t *testing.T) {
		_, err := freight.NewFreight(
			kernel.NewUUID(), kernel.NewUUID(), 1,
			fixedPricing(t, 100000),
			freight.CargoCategory("FROZEN_YOGURT"), 5, freight.TierStandard,
		)

		require.Error(t, err)
	})

	t.Run("rejects axle count out of range", func(t *testing.T) {
		_, err := freight.NewFreight(
			kernel.NewUUID(), kernel.NewUUID(), 1,
			fixedPricing(t, 100000),
			freight.CategoryGeneral, 12, freight.TierStandard,
		)

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var f freight.Freight

		require.Error(t, f.Validate())
	})
}

func TestRestoreFreight(t *testing.T) {
	t.Run("restores a partially filled fleet", func(t *testing.T) {
		f, err := freight.RestoreFreight(
			kernel.NewUUID(), kernel.NewUUID(), 4, 2,
			freight.Open, nil,
			fixedPricing(t, 100000),
			freight.CategoryGeneral, 5, freight.TierStandard, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, 2, f.AcceptedTrucks())
		assert.Equal(t, 2, f.RemainingSlots())
	})

	t.Run("rejects accepted trucks above capacity", func(t *testing.T) {
		_, err := freight.RestoreFreight(
			kernel.NewUUID(), kernel.NewUUID(), 2, 3,
			freight.Open, nil,
			fixedPricing(t, 100000),
			freight.CategoryGeneral, 5, freight.TierStandard, nil,
		)

		require.Error(t, err)
	})

	t.Run("rejects driver link on multi-truck freight", func(t *testing.T) {
		driverID := kernel.NewUUID()
		_, err := freight.RestoreFreight(
			kernel.NewUUID(), kernel.NewUUID(), 2, 1,
			freight.Open, &driverID,
			fixedPricing(t, 100000),
			freight.CategoryGeneral, 5, freight.TierStandard, nil,
		)

		require.Error(t, err)
	})

	t.Run("restores single-truck freight with bound driver", func(t *testing.T) {
		driverID := kernel.NewUUID()
		f, err := freight.RestoreFreight(
			kernel.NewUUID(), kernel.NewUUID(), 1, 1,
			freight.Accepted, &driverID,
			fixedPricing(t, 100000),
			freight.CategoryGeneral, 5, freight.TierStandard, nil,
		)

		require.NoError(t, err)
		assert.True(t, f.IsSingleTruck())
		assert.False(t, f.HasCapacity())
		require.NotNil(t, f.Driver())
		assert.True(t, f.Driver().IsEqual(driverID))
	})
}

func TestFreight_MinimumFloor(t *testing.T) {
	f, err := freight.NewFreight(
		kernel.NewUUID(), kernel.NewUUID(), 4,
		fixedPricing(t, 100000),
		freight.CategoryGeneral, 5, freight.TierStandard,
	)
	require.NoError(t, err)

	floor, _ := kernel.NewMoneyFromCents(10000)
	f.SetMinimumFloor(&floor)

	assert.True(t, f.FloorEnforceable())
	// The floor applies per truck, never divided by the fleet size.
	assert.Equal(t, int64(10000), f.MinimumFloor().Cents())

	f.SetMinimumFloor(nil)
	assert.False(t, f.FloorEnforceable())
	assert.Nil(t, f.MinimumFloor())
}

func TestFreight_IsOwnedBy(t *testing.T) {
	requesterID := kernel.NewUUID()
	f, err := freight.NewFreight(
		kernel.NewUUID(), requesterID, 1,
		fixedPricing(t, 100000),
		freight.CategoryGeneral, 5, freight.TierStandard,
	)
	require.NoError(t, err)

	assert.True(t, f.IsOwnedBy(requesterID))
	assert.False(t, f.IsOwnedBy(kernel.NewUUID()))
}
