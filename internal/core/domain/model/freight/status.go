package freight

import (
	"fmt"

	"freightbroker/internal/pkg/errs"
)

// Status represents the effective lifecycle state of a freight. For a
// single-truck freight the column mirrors the sole assignment's state; for a
// multi-truck freight the effective status is derived by the aggregator from
// the assignments and the freight column stays Open.
//
// Status is a closed enumeration with an explicit total-order rank, so
// aggregation across assignments is exhaustive and compiler-checked rather
// than a comparison of free-form strings.
type Status int

const (
	// Unknown represents an invalid or undefined status and catches
	// uninitialized values.
	Unknown Status = iota

	// Open means the freight is still seeking capacity.
	Open

	// Accepted means a carrier has been bound but loading has not started.
	Accepted

	// Loading means the truck is at the origin being loaded.
	Loading

	// Loaded means loading finished and the trip has not started.
	Loaded

	// InTransit means the truck is under way to the destination.
	InTransit

	// DeliveredPendingConfirmation means the carrier reported delivery and
	// the requester has not confirmed it yet.
	DeliveredPendingConfirmation

	// Delivered is the terminal success state, confirmed by the requester.
	Delivered

	// Cancelled is the side terminal state reached through withdrawal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                      "UNKNOWN",
		Open:                         "OPEN",
		Accepted:                     "ACCEPTED",
		Loading:                      "LOADING",
		Loaded:                       "LOADED",
		InTransit:                    "IN_TRANSIT",
		DeliveredPendingConfirmation: "DELIVERED_PENDING_CONFIRMATION",
		Delivered:                    "DELIVERED",
		Cancelled:                    "CANCELLED",
	}
}

// getStatusRanks returns the fixed total order used by effective-status
// aggregation. Higher rank dominates; Cancelled never dominates anything.
func getStatusRanks() map[Status]int {
	return map[Status]int{
		Cancelled:                    0,
		Open:                         1,
		Accepted:                     2,
		Loading:                      3,
		Loaded:                       4,
		InTransit:                    5,
		DeliveredPendingConfirmation: 6,
		Delivered:                    7,
	}
}

// StatusFromString parses a wire name such as "IN_TRANSIT" into a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid freight status", s))
}

// Validate checks that the value is one of the declared statuses.
func (s Status) Validate() error {
	if _, ok := getStatusRanks()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "IN_TRANSIT".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Rank returns the position of the status in the aggregation total order.
// Unknown ranks below everything.
func (s Status) Rank() int {
	if rank, ok := getStatusRanks()[s]; ok {
		return rank
	}
	return -1
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}
