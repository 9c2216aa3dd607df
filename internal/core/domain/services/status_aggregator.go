package services

import (
	"freightbroker/internal/core/domain/model/assignment"
	"freightbroker/internal/core/domain/model/freight"
)

// StatusAggregator derives the single authoritative status of a freight from
// the statuses of its assignments, even while the N trucks of a fleet are in
// different states.
type StatusAggregator struct{}

// NewStatusAggregator creates a StatusAggregator.
func NewStatusAggregator() StatusAggregator {
	return StatusAggregator{}
}

// MirrorStatus maps an assignment's delivery state onto the freight status
// enumeration. Used for effective-status answers and for mirroring the sole
// assignment of a single-truck freight onto the freight's own column.
func MirrorStatus(s assignment.Status) freight.Status {
	switch s {
	case assignment.Accepted:
		return freight.Accepted
	case assignment.Loading:
		return freight.Loading
	case assignment.Loaded:
		return freight.Loaded
	case assignment.InTransit:
		return freight.InTransit
	case assignment.DeliveredPendingConfirmation:
		return freight.DeliveredPendingConfirmation
	case assignment.Delivered:
		return freight.Delivered
	case assignment.Cancelled:
		return freight.Cancelled
	default:
		return freight.Unknown
	}
}

// EffectiveStatus returns the freight's effective status.
//
// For a single-truck freight the freight's own status column is
// authoritative. Otherwise the non-cancelled assignment statuses compete
// under the fixed total order of freight.Status ranks and the highest rank
// wins. A freight with no assignments, or with only cancelled ones, is still
// seeking capacity and reports Open.
func (StatusAggregator) EffectiveStatus(f *freight.Freight, statuses []assignment.Status) (freight.Status, error) {
	if err := f.Validate(); err != nil {
		return freight.Unknown, err
	}

	if f.IsSingleTruck() {
		return f.Status(), nil
	}

	effective := freight.Open
	for _, s := range statuses {
		if !s.IsActive() {
			continue
		}
		mapped := MirrorStatus(s)
		if mapped.Rank() > effective.Rank() {
			effective = mapped
		}
	}

	return effective, nil
}
