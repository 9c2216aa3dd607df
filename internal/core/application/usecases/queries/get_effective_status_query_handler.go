package queries

import (
	"context"

	"freightbroker/internal/core/domain/model/assignment"
	"freightbroker/internal/core/domain/services"

	"gorm.io/gorm"
)

// GetEffectiveStatusQueryHandler reads the freight row and the statuses of
// its assignments directly with SQL and applies the domain aggregation rule.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetEffectiveStatusQueryHandler struct {
	db         *gorm.DB
	aggregator services.StatusAggregator
}

// NewGetEffectiveStatusQueryHandler creates a handler for status queries.
// Requires a GORM database connection for query execution.
func NewGetEffectiveStatusQueryHandler(db *gorm.DB) GetEffectiveStatusQueryHandler {
	return GetEffectiveStatusQueryHandler{
		db:         db,
		aggregator: services.NewStatusAggregator(),
	}
}

// Handle resolves the effective status of the queried freight.
// Returns a NOT_FOUND error when the freight does not exist.
func (h GetEffectiveStatusQueryHandler) Handle(
	ctx context.Context,
	query GetEffectiveStatusQuery,
) (GetEffectiveStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetEffectiveStatusQueryResponse{}, err
	}

	fr, err := readFreightRow(ctx, h.db, query.FreightID())
	if err != nil {
		return GetEffectiveStatusQueryResponse{}, err
	}

	statuses, err := h.readAssignmentStatuses(ctx, query)
	if err != nil {
		return GetEffectiveStatusQueryResponse{}, err
	}

	effective, err := h.aggregator.EffectiveStatus(fr, statuses)
	if err != nil {
		return GetEffectiveStatusQueryResponse{}, err
	}

	return GetEffectiveStatusQueryResponse{
		FreightID:       fr.ID(),
		EffectiveStatus: effective,
		RequiredTrucks:  fr.RequiredTrucks(),
		AcceptedTrucks:  fr.AcceptedTrucks(),
		RemainingSlots:  fr.RemainingSlots(),
	}, nil
}

func (h GetEffectiveStatusQueryHandler) readAssignmentStatuses(
	ctx context.Context,
	query GetEffectiveStatusQuery,
) ([]assignment.Status, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status
		FROM assignments
		WHERE freight_id = ?
	`, query.FreightID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make([]assignment.Status, 0)
	for rows.Next() {
		var statusStr string
		if err = rows.Scan(&statusStr); err != nil {
			return nil, err
		}

		status, parseErr := assignment.StatusFromString(statusStr)
		if parseErr != nil {
			return nil, parseErr
		}
		statuses = append(statuses, status)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return statuses, nil
}
