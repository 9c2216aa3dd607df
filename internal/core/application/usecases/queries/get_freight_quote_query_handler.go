package queries

import (
	"context"

	"freightbroker/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetFreightQuoteQueryHandler reads the freight row with SQL and resolves
// the displayable price through the domain price contract.
type GetFreightQuoteQueryHandler struct {
	db       *gorm.DB
	resolver services.PriceResolver
}

// NewGetFreightQuoteQueryHandler creates a handler for quote queries.
// Requires a GORM database connection for query execution.
func NewGetFreightQuoteQueryHandler(db *gorm.DB) GetFreightQuoteQueryHandler {
	return GetFreightQuoteQueryHandler{
		db:       db,
		resolver: services.NewPriceResolver(),
	}
}

// Handle resolves the quote for the queried freight and viewer role.
// Returns a NOT_FOUND error when the freight does not exist.
func (h GetFreightQuoteQueryHandler) Handle(
	ctx context.Context,
	query GetFreightQuoteQuery,
) (GetFreightQuoteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFreightQuoteQueryResponse{}, err
	}

	fr, err := readFreightRow(ctx, h.db, query.FreightID())
	if err != nil {
		return GetFreightQuoteQueryResponse{}, err
	}

	quote, err := h.resolver.Resolve(fr.Pricing(), query.Role())
	if err != nil {
		return GetFreightQuoteQueryResponse{}, err
	}

	return GetFreightQuoteQueryResponse{
		FreightID:    fr.ID(),
		PricingType:  fr.Pricing().Type().String(),
		PrimaryLabel: quote.PrimaryLabel,
		Breakdown:    quote.Breakdown,
		MinimumFloor: fr.MinimumFloor(),
	}, nil
}
