package commands_test

import (
	"testing"
	"time"

	"freightbroker/internal/core/domain/model/assignment"
	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/domain/model/proposal"

	"github.com/stretchr/testify/require"
)

func testMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromCents(cents)
	require.NoError(t, err)
	return m
}

func testPricing(t *testing.T) freight.Pricing {
	t.Helper()
	pricing, err := freight.NewFixedPricing(testMoney(t, 150000), 12000, 420)
	require.NoError(t, err)
	return pricing
}

// testFreight builds an open freight with the given capacity state and an
// optional floor in centavos (0 = not enforceable).
func testFreight(t *testing.T, requesterID kernel.UUID, requiredTrucks, acceptedTrucks int, floorCents int64) *freight.Freight {
	t.Helper()

	var floor *kernel.Money
	if floorCents > 0 {
		m := testMoney(t, floorCents)
		floor = &m
	}

	f, err := freight.RestoreFreight(
		kernel.NewUUID(), requesterID, requiredTrucks, acceptedTrucks,
		freight.Open, nil,
		testPricing(t), freight.CategoryGeneral, 5, freight.TierStandard, floor,
	)
	require.NoError(t, err)
	return f
}

func testProposal(t *testing.T, freightID, carrierID kernel.UUID, priceCents int64) *proposal.Proposal {
	t.Helper()
	p, err := proposal.NewProposal(kernel.NewUUID(), freightID, carrierID, testMoney(t, priceCents))
	require.NoError(t, err)
	return p
}

func testAssignment(t *testing.T, freightID, carrierID kernel.UUID, status assignment.Status) *assignment.Assignment {
	t.Helper()
	a, err := assignment.RestoreAssignment(
		kernel.NewUUID(), freightID, carrierID, kernel.NewUUID(),
		testMoney(t, 150000), status,
		time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		nil, nil, nil,
	)
	require.NoError(t, err)
	return a
}
