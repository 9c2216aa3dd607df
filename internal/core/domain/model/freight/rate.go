package freight

// CargoCategory keys the regulatory rate table together with the axle count
// and table tier. CategoryGeneral doubles as the fallback row when no exact
// category match exists.
type CargoCategory string

const (
	CategoryGeneral       CargoCategory = "GENERAL"
	CategorySolidBulk     CargoCategory = "SOLID_BULK"
	CategoryLiquidBulk    CargoCategory = "LIQUID_BULK"
	CategoryRefrigerated  CargoCategory = "REFRIGERATED"
	CategoryDangerous     CargoCategory = "DANGEROUS"
	CategoryContainerized CargoCategory = "CONTAINERIZED"
)

var allowedCargoCategories = [...]CargoCategory{
	CategoryGeneral, CategorySolidBulk, CategoryLiquidBulk,
	CategoryRefrigerated, CategoryDangerous, CategoryContainerized,
}

// Valid reports whether the category is one of the declared values.
func (c CargoCategory) Valid() bool {
	for _, v := range allowedCargoCategories {
		if c == v {
			return true
		}
	}
	return false
}

// TableTier selects between the standard and the high-performance rate table.
type TableTier string

const (
	TierStandard        TableTier = "STANDARD"
	TierHighPerformance TableTier = "HIGH_PERFORMANCE"
)

// Valid reports whether the tier is one of the declared values.
func (t TableTier) Valid() bool {
	return t == TierStandard || t == TierHighPerformance
}

// Rate is one row of the regulatory rate table: a cost per kilometer and a
// fixed charge, both in currency units. The per-truck regulatory floor is
// CostPerKM × distance + FixedCharge.
type Rate struct {
	CostPerKM   float64
	FixedCharge float64
}

// Axle count bounds for road freight combinations.
const (
	MinAxleCount = 2
	MaxAxleCount = 9
)
