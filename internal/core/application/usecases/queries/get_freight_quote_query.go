package queries

import (
	"errors"

	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/domain/services"
	"freightbroker/internal/pkg/guard"
)

var (
	ErrGetFreightQuoteQueryIsNotConstructed = errors.New(
		"GetFreightQuoteQuery must be created via NewGetFreightQuoteQuery constructor",
	)
)

// GetFreightQuoteQuery resolves the displayable price of one freight for one
// viewer. The primary label is derived from the pricing tuple; the cost
// breakdown behind it is withheld from fleet-operator viewers.
//
// Example:
//
//	query, err := NewGetFreightQuoteQuery(freightID, services.RoleCarrier)
//	if err != nil {
//	    return err
//	}
//
//	quote, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to resolve quote: %w", err)
//	}
//
//	fmt.Printf("Freight %s costs %s\n", quote.FreightID, quote.PrimaryLabel)
type GetFreightQuoteQuery struct {
	freightID kernel.UUID
	role      services.ViewerRole

	guard guard.ConstructorGuard
}

// NewGetFreightQuoteQuery creates a quote query for the given freight and
// viewer role.
func NewGetFreightQuoteQuery(freightID kernel.UUID, role services.ViewerRole) (GetFreightQuoteQuery, error) {
	if err := freightID.Validate(); err != nil {
		return GetFreightQuoteQuery{}, err
	}
	return GetFreightQuoteQuery{
		freightID: freightID,
		role:      role,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// FreightID returns the identifier of the freight being quoted.
func (q GetFreightQuoteQuery) FreightID() kernel.UUID {
	return q.freightID
}

// Role returns the viewer role the quote is gated by.
func (q GetFreightQuoteQuery) Role() services.ViewerRole {
	return q.role
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetFreightQuoteQueryIsNotConstructed if validation fails.
func (q GetFreightQuoteQuery) Validate() error {
	return q.guard.Validate(ErrGetFreightQuoteQueryIsNotConstructed)
}

// GetFreightQuoteQueryResponse is the price read model for one freight.
// Breakdown is nil when the viewer is not entitled to it.
type GetFreightQuoteQueryResponse struct {
	FreightID    kernel.UUID
	PricingType  string
	PrimaryLabel kernel.Money
	Breakdown    *services.Breakdown
	MinimumFloor *kernel.Money
}
