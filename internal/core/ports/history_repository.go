package ports

import (
	"context"

	"freightbroker/internal/core/domain/model/history"
)

// HistoryRepository defines the persistence contract for completion snapshots.
type HistoryRepository interface {
	// Merge upserts a snapshot keyed by assignment. Repeated merges for the
	// same assignment never duplicate a row and never clear a timestamp an
	// earlier merge recorded; only absent fields are filled in.
	Merge(ctx context.Context, snapshot history.Snapshot) error
}
