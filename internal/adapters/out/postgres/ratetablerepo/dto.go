// Package ratetablerepo provides read access to the regulatory rate table.
// Rows are keyed by (cargo_category, axle_count, table_tier); the loaded
// edition is identified by a version string kept alongside the rows.
package ratetablerepo

// RateRowDTO represents one row of the regulatory rate table.
type RateRowDTO struct {
	CargoCategory string  `gorm:"column:cargo_category;primaryKey"`
	AxleCount     int     `gorm:"column:axle_count;primaryKey"`
	TableTier     string  `gorm:"column:table_tier;primaryKey"`
	CostPerKM     float64 `gorm:"column:cost_per_km"`
	FixedCharge   float64 `gorm:"column:fixed_charge"`
	Version       string  `gorm:"column:version"`
}

// TableName specifies the database table name for rate table rows.
func (RateRowDTO) TableName() string {
	return "rate_table"
}
