package services

import (
	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/errs"
)

// ViewerRole determines how much of a freight's pricing a caller may see.
type ViewerRole int

const (
	RoleUnknown ViewerRole = iota

	// RoleCarrier is an individual carrier: sees the primary label and the
	// cost breakdown.
	RoleCarrier

	// RoleFleetOperator is a company view: sees only the primary label, the
	// breakdown is withheld regardless of pricing type.
	RoleFleetOperator
)

// ViewerRoleFromString parses "CARRIER" or "FLEET_OPERATOR".
func ViewerRoleFromString(s string) (ViewerRole, error) {
	switch s {
	case "CARRIER":
		return RoleCarrier, nil
	case "FLEET_OPERATOR":
		return RoleFleetOperator, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidError("viewerRole")
	}
}

// Breakdown is the secondary/meta detail behind a primary label: the rate,
// the quantity it multiplies, and the unit of that quantity.
type Breakdown struct {
	Rate     kernel.Money
	Quantity float64
	Unit     string
}

// Quote is the resolved price view for one freight and one viewer.
type Quote struct {
	PrimaryLabel kernel.Money
	// Breakdown is nil for fleet-operator views.
	Breakdown *Breakdown
}

// PriceResolver resolves the canonical displayable price from a freight's
// pricing tuple and gates the cost breakdown by viewer role.
type PriceResolver struct{}

// NewPriceResolver creates a PriceResolver.
func NewPriceResolver() PriceResolver {
	return PriceResolver{}
}

// Resolve computes the primary label for the pricing type:
// FIXED → the flat price; PER_KM → rate × distance; PER_TON → rate × tons.
// Fleet-operator viewers receive the primary label only.
func (r PriceResolver) Resolve(pricing freight.Pricing, role ViewerRole) (Quote, error) {
	if err := pricing.Validate(); err != nil {
		return Quote{}, err
	}
	if role != RoleCarrier && role != RoleFleetOperator {
		return Quote{}, errs.NewValueIsInvalidError("viewerRole")
	}

	var (
		primary   kernel.Money
		breakdown *Breakdown
	)

	switch pricing.Type() {
	case freight.PricingFixed:
		primary = *pricing.Price()
		breakdown = &Breakdown{Rate: primary, Quantity: 1, Unit: "trip"}
	case freight.PricingPerKM:
		rate := *pricing.PricePerKM()
		primary = rate.MulFloat(pricing.DistanceKM())
		breakdown = &Breakdown{Rate: rate, Quantity: pricing.DistanceKM(), Unit: "km"}
	case freight.PricingPerTon:
		rate := *pricing.PricePerTon()
		primary = rate.MulFloat(pricing.WeightTons())
		breakdown = &Breakdown{Rate: rate, Quantity: pricing.WeightTons(), Unit: "ton"}
	default:
		return Quote{}, errs.NewValueIsInvalidError("pricingType")
	}

	if role == RoleFleetOperator {
		breakdown = nil
	}

	return Quote{PrimaryLabel: primary, Breakdown: breakdown}, nil
}
