package kernel_test

import (
	"testing"

	"freightbroker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromCents(t *testing.T) {
	t.Run("should create money from centavos", func(t *testing.T) {
		m, err := kernel.NewMoneyFromCents(12345)

		require.NoError(t, err)
		assert.Equal(t, int64(12345), m.Cents())
		assert.InDelta(t, 123.45, m.Float64(), 0.0001)
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromCents(-1)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNegative, err)
	})
}

func TestNewMoneyFromFloat(t *testing.T) {
	t.Run("should round to two decimals", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(99.999)

		require.NoError(t, err)
		assert.Equal(t, int64(10000), m.Cents())
	})

	t.Run("should keep exact two-decimal amounts", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(100.00)

		require.NoError(t, err)
		assert.Equal(t, int64(10000), m.Cents())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(-0.01)

		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("Add", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromCents(150)
		b, _ := kernel.NewMoneyFromCents(50)

		assert.Equal(t, int64(200), a.Add(b).Cents())
	})

	t.Run("MulFloat rounds to nearest centavo", func(t *testing.T) {
		rate, _ := kernel.NewMoneyFromCents(333) // 3.33 per km

		total := rate.MulFloat(100.5)

		assert.Equal(t, int64(33467), total.Cents()) // 334.665 -> 334.67
	})
}

func TestMoney_Comparisons(t *testing.T) {
	floor, _ := kernel.NewMoneyFromCents(10000)
	below, _ := kernel.NewMoneyFromCents(9999)
	equal, _ := kernel.NewMoneyFromCents(10000)

	assert.True(t, below.LessThan(floor))
	assert.False(t, equal.LessThan(floor))
	assert.True(t, equal.IsEqual(floor))
	assert.True(t, floor.IsPositive())

	var zero kernel.Money
	assert.True(t, zero.IsZero())
	assert.False(t, zero.IsPositive())
}

func TestMoney_String(t *testing.T) {
	m, _ := kernel.NewMoneyFromCents(10050)

	assert.Equal(t, "100.50", m.String())
}
