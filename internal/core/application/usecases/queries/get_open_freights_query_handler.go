package queries

import (
	"context"
	"database/sql"

	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenFreightsQueryHandler lists freights with unfilled slots.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOpenFreightsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenFreightsQueryHandler creates a handler for open-freight listings.
// Requires a GORM database connection for query execution.
func NewGetOpenFreightsQueryHandler(db *gorm.DB) GetOpenFreightsQueryHandler {
	return GetOpenFreightsQueryHandler{db: db}
}

// Handle executes the query and returns open freights sorted by identifier.
func (h GetOpenFreightsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenFreightsQuery,
) ([]GetOpenFreightsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	freights := make([]GetOpenFreightsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			requester_id,
			required_trucks,
			accepted_trucks,
			cargo_category,
			pricing_type,
			minimum_floor_cents
		FROM freights
		WHERE status = 'OPEN' AND accepted_trucks < required_trucks
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item GetOpenFreightsQueryResponse
		var id, requesterID uuid.UUID
		var category string
		var floorCents sql.NullInt64

		err = rows.Scan(
			&id,
			&requesterID,
			&item.RequiredTrucks,
			&item.AcceptedTrucks,
			&category,
			&item.PricingType,
			&floorCents,
		)
		if err != nil {
			return nil, err
		}

		freightID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		item.ID = freightID

		ownerID, idErr := kernel.UUIDFromBytes(requesterID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.RequesterID = ownerID

		item.RemainingSlots = item.RequiredTrucks - item.AcceptedTrucks
		item.CargoCategory = freight.CargoCategory(category)

		floor, moneyErr := nullableMoney(floorCents)
		if moneyErr != nil {
			return nil, moneyErr
		}
		item.MinimumFloor = floor

		freights = append(freights, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return freights, nil
}
