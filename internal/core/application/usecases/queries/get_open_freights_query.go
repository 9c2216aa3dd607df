package queries

import (
	"errors"

	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/guard"
)

var (
	ErrGetOpenFreightsQueryIsNotConstructed = errors.New(
		"GetOpenFreightsQuery must be created via NewGetOpenFreightsQuery constructor",
	)
)

// GetOpenFreightsQuery lists every freight that still has unfilled slots.
// Carriers browse this list to find capacity to propose on.
//
// Example:
//
//	query := NewGetOpenFreightsQuery()
//	freights, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list open freights: %w", err)
//	}
//
//	for _, f := range freights {
//	    fmt.Printf("%s: %d of %d slots free\n", f.ID, f.RemainingSlots, f.RequiredTrucks)
//	}
type GetOpenFreightsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenFreightsQuery creates a query to list open freights.
// This is a parameterless query.
func NewGetOpenFreightsQuery() GetOpenFreightsQuery {
	return GetOpenFreightsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOpenFreightsQueryIsNotConstructed if validation fails.
func (q GetOpenFreightsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenFreightsQueryIsNotConstructed)
}

// GetOpenFreightsQueryResponse is one row of the open-freight listing.
type GetOpenFreightsQueryResponse struct {
	ID             kernel.UUID
	RequesterID    kernel.UUID
	RequiredTrucks int
	AcceptedTrucks int
	RemainingSlots int
	CargoCategory  freight.CargoCategory
	PricingType    string
	MinimumFloor   *kernel.Money
}
