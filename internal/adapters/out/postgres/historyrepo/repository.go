package historyrepo

import (
	"context"

	"freightbroker/internal/core/domain/model/history"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Merge upserts a snapshot keyed by assignment. The status and price columns
// take the newest write; the timestamp columns coalesce so a value recorded
// by an earlier merge survives a later merge that does not know it.
func (r *GormHistoryRepository) Merge(ctx context.Context, snapshot history.Snapshot) error {
	dto := fromDomain(snapshot)

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "assignment_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"agreed_price_cents": dto.AgreedPriceCents,
			"final_status":       dto.FinalStatus,
			"delivery_confirmed_at": gorm.Expr(
				"COALESCE(assignment_history.delivery_confirmed_at, excluded.delivery_confirmed_at)"),
			"payment_confirmed_by_producer_at": gorm.Expr(
				"COALESCE(assignment_history.payment_confirmed_by_producer_at, excluded.payment_confirmed_by_producer_at)"),
			"payment_confirmed_by_driver_at": gorm.Expr(
				"COALESCE(assignment_history.payment_confirmed_by_driver_at, excluded.payment_confirmed_by_driver_at)"),
		}),
	}).Create(&dto).Error
}
