package ratetablerepo

import (
	"context"
	"errors"
	"fmt"

	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRateTableRepository implements RateTableRepository using GORM.
type GormRateTableRepository struct {
	db *gorm.DB
}

// NewGormRateTableRepository creates a new GORM rate table repository.
func NewGormRateTableRepository(db *gorm.DB) *GormRateTableRepository {
	return &GormRateTableRepository{db: db}
}

// Lookup returns the rate row for the exact (category, axles, tier)
// combination. The general-cargo fallback is the floor calculator's rule,
// not the repository's; a miss here is reported as NOT_FOUND.
func (r *GormRateTableRepository) Lookup(
	ctx context.Context,
	category freight.CargoCategory,
	axleCount int,
	tier freight.TableTier,
) (freight.Rate, error) {
	var dto RateRowDTO
	err := r.db.WithContext(ctx).
		First(&dto, "cargo_category = ? AND axle_count = ? AND table_tier = ?",
			string(category), axleCount, string(tier)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return freight.Rate{}, errs.NewObjectNotFoundError("rate",
				fmt.Sprintf("%s/%d/%s", category, axleCount, tier))
		}
		return freight.Rate{}, err
	}

	return freight.Rate{
		CostPerKM:   dto.CostPerKM,
		FixedCharge: dto.FixedCharge,
	}, nil
}

// Version identifies the currently loaded edition of the rate table.
func (r *GormRateTableRepository) Version(ctx context.Context) (string, error) {
	var version string
	err := r.db.WithContext(ctx).Model(&RateRowDTO{}).
		Select("COALESCE(MAX(version), 'unversioned')").
		Scan(&version).Error
	if err != nil {
		return "", err
	}

	return version, nil
}
