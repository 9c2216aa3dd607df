package freight

import (
	"fmt"

	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/errs"
)

// PricingType distinguishes how a freight's displayable price is derived.
type PricingType int

const (
	PricingUnknown PricingType = iota

	// PricingFixed quotes a flat price per truck.
	PricingFixed

	// PricingPerKM quotes a rate multiplied by the trip distance.
	PricingPerKM

	// PricingPerTon quotes a rate multiplied by the cargo weight in tons.
	PricingPerTon
)

func getPricingTypeStrings() map[PricingType]string {
	return map[PricingType]string{
		PricingFixed:  "FIXED",
		PricingPerKM:  "PER_KM",
		PricingPerTon: "PER_TON",
	}
}

// PricingTypeFromString parses a wire name such as "PER_KM" into a PricingType.
func PricingTypeFromString(s string) (PricingType, error) {
	for pricingType, str := range getPricingTypeStrings() {
		if str == s {
			return pricingType, nil
		}
	}
	return PricingUnknown, errs.NewValueIsInvalidErrorWithCause("pricingType is invalid",
		fmt.Errorf("%q is not a valid pricing type", s))
}

// String returns the wire name of the pricing type.
func (t PricingType) String() string {
	if s, ok := getPricingTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate checks that the value is one of the declared pricing types.
func (t PricingType) Validate() error {
	if _, ok := getPricingTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("pricingType is invalid", fmt.Errorf("%d is not a valid pricing type", t))
	}
	return nil
}

var (
	ErrPricingIsNotConstructed = errs.NewValueIsRequiredError("Pricing must be created via its constructors")
	ErrRateIsRequired          = errs.NewValueIsRequiredError("pricing rate must be positive")
	ErrDistanceIsRequired      = errs.NewValueIsRequiredError("distanceKm must be positive for per-km pricing")
	ErrWeightIsRequired        = errs.NewValueIsRequiredError("weightKg must be positive for per-ton pricing")
)

// Pricing is the value object carrying a freight's pricing tuple:
// {pricing_type, price, price_per_km, price_per_ton, weight, distance_km}.
// Exactly one rate field is set, matching the pricing type. The tuple is
// fixed at freight creation; the primary displayable amount is resolved by
// the price contract service.
type Pricing struct {
	pricingType PricingType
	price       *kernel.Money
	pricePerKM  *kernel.Money
	pricePerTon *kernel.Money
	weightKG    float64
	distanceKM  float64
}

// NewFixedPricing creates a flat per-truck pricing tuple.
func NewFixedPricing(price kernel.Money, weightKG, distanceKM float64) (Pricing, error) {
	if !price.IsPositive() {
		return Pricing{}, ErrRateIsRequired
	}
	return Pricing{
		pricingType: PricingFixed,
		price:       &price,
		weightKG:    weightKG,
		distanceKM:  distanceKM,
	}, nil
}

// NewPerKMPricing creates a distance-based pricing tuple.
func NewPerKMPricing(ratePerKM kernel.Money, weightKG, distanceKM float64) (Pricing, error) {
	if !ratePerKM.IsPositive() {
		return Pricing{}, ErrRateIsRequired
	}
	if distanceKM <= 0 {
		return Pricing{}, ErrDistanceIsRequired
	}
	return Pricing{
		pricingType: PricingPerKM,
		pricePerKM:  &ratePerKM,
		weightKG:    weightKG,
		distanceKM:  distanceKM,
	}, nil
}

// NewPerTonPricing creates a weight-based pricing tuple.
func NewPerTonPricing(ratePerTon kernel.Money, weightKG, distanceKM float64) (Pricing, error) {
	if !ratePerTon.IsPositive() {
		return Pricing{}, ErrRateIsRequired
	}
	if weightKG <= 0 {
		return Pricing{}, ErrWeightIsRequired
	}
	return Pricing{
		pricingType: PricingPerTon,
		pricePerTon: &ratePerTon,
		weightKG:    weightKG,
		distanceKM:  distanceKM,
	}, nil
}

// RestorePricing reconstructs a pricing tuple from persistence without
// re-running the creation validations beyond type dispatch.
func RestorePricing(
	pricingType PricingType,
	price, pricePerKM, pricePerTon *kernel.Money,
	weightKG, distanceKM float64,
) (Pricing, error) {
	if err := pricingType.Validate(); err != nil {
		return Pricing{}, err
	}
	return Pricing{
		pricingType: pricingType,
		price:       price,
		pricePerKM:  pricePerKM,
		pricePerTon: pricePerTon,
		weightKG:    weightKG,
		distanceKM:  distanceKM,
	}, nil
}

// Type returns the pricing type.
func (p Pricing) Type() PricingType {
	return p.pricingType
}

// Price returns the flat price for FIXED pricing, nil otherwise.
func (p Pricing) Price() *kernel.Money {
	return p.price
}

// PricePerKM returns the distance rate for PER_KM pricing, nil otherwise.
func (p Pricing) PricePerKM() *kernel.Money {
	return p.pricePerKM
}

// PricePerTon returns the weight rate for PER_TON pricing, nil otherwise.
func (p Pricing) PricePerTon() *kernel.Money {
	return p.pricePerTon
}

// WeightKG returns the cargo weight in kilograms.
func (p Pricing) WeightKG() float64 {
	return p.weightKG
}

// WeightTons returns the cargo weight in tons.
func (p Pricing) WeightTons() float64 {
	return p.weightKG / 1000
}

// DistanceKM returns the trip distance in kilometers.
func (p Pricing) DistanceKM() float64 {
	return p.distanceKM
}

// Validate checks that the tuple carries the rate field its type requires.
func (p Pricing) Validate() error {
	if err := p.pricingType.Validate(); err != nil {
		return err
	}

	switch p.pricingType {
	case PricingFixed:
		if p.price == nil {
			return ErrPricingIsNotConstructed
		}
	case PricingPerKM:
		if p.pricePerKM == nil {
			return ErrPricingIsNotConstructed
		}
	case PricingPerTon:
		if p.pricePerTon == nil {
			return ErrPricingIsNotConstructed
		}
	}
	return nil
}
