// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/guard"
)

var (
	ErrGetEffectiveStatusQueryIsNotConstructed = errors.New(
		"GetEffectiveStatusQuery must be created via NewGetEffectiveStatusQuery constructor",
	)
)

// GetEffectiveStatusQuery resolves the presented status of one freight. For a
// single-truck freight that is the freight's own status column; for a fleet
// the answer is aggregated from the statuses of its active assignments.
//
// Example:
//
//	query, err := NewGetEffectiveStatusQuery(freightID)
//	if err != nil {
//	    return err
//	}
//
//	status, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to resolve status: %w", err)
//	}
//
//	fmt.Printf("Freight %s is %s (%d/%d trucks)\n",
//	    status.FreightID, status.EffectiveStatus, status.AcceptedTrucks, status.RequiredTrucks)
type GetEffectiveStatusQuery struct {
	freightID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetEffectiveStatusQuery creates a query for the given freight.
func NewGetEffectiveStatusQuery(freightID kernel.UUID) (GetEffectiveStatusQuery, error) {
	if err := freightID.Validate(); err != nil {
		return GetEffectiveStatusQuery{}, err
	}
	return GetEffectiveStatusQuery{
		freightID: freightID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// FreightID returns the identifier of the freight being queried.
func (q GetEffectiveStatusQuery) FreightID() kernel.UUID {
	return q.freightID
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetEffectiveStatusQueryIsNotConstructed if validation fails.
func (q GetEffectiveStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetEffectiveStatusQueryIsNotConstructed)
}

// GetEffectiveStatusQueryResponse is the status read model for one freight.
type GetEffectiveStatusQueryResponse struct {
	FreightID       kernel.UUID
	EffectiveStatus freight.Status
	RequiredTrucks  int
	AcceptedTrucks  int
	RemainingSlots  int
}
