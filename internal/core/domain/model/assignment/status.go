package assignment

import (
	"fmt"

	"freightbroker/internal/pkg/errs"
)

// Status implements the per-truck delivery state machine.
//
// State transitions:
//
//	Accepted ──> Loading ──> Loaded ──> InTransit ──> DeliveredPendingConfirmation ──> Delivered
//	    │
//	    └──> Cancelled (carrier withdrawal, Accepted only)
//
// Delivered and Cancelled are terminal. Every transition method returns the
// new status or a VALIDATION error, so an invalid jump can never be stored.
type Status int

const (
	// Unknown represents an invalid or undefined status and catches
	// uninitialized values.
	Unknown Status = iota

	// Accepted is the initial status of every assignment.
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

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal state reached through carrier withdrawal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                      "UNKNOWN",
		Accepted:                     "ACCEPTED",
		Loading:                      "LOADING",
		Loaded:                       "LOADED",
		InTransit:                    "IN_TRANSIT",
		DeliveredPendingConfirmation: "DELIVERED_PENDING_CONFIRMATION",
		Delivered:                    "DELIVERED",
		Cancelled:                    "CANCELLED",
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
		fmt.Errorf("%q is not a valid assignment status", s))
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Validate checks that the value is one of the declared statuses.
func (s Status) Validate() error {
	switch s {
	case Accepted, Loading, Loaded, InTransit, DeliveredPendingConfirmation, Delivered, Cancelled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid assignment status", s))
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the assignment still occupies a freight slot.
func (s Status) IsActive() bool {
	return s != Cancelled && s != Unknown
}

func (s Status) invalidTransition(target Status) error {
	return errs.NewValueIsInvalidErrorWithCause("status transition is invalid",
		fmt.Errorf("cannot move from %s to %s", s, target))
}

// StartLoading transitions Accepted -> Loading.
func (s Status) StartLoading() (Status, error) {
	if s != Accepted {
		return Unknown, s.invalidTransition(Loading)
	}
	return Loading, nil
}

// FinishLoading transitions Loading -> Loaded.
func (s Status) FinishLoading() (Status, error) {
	if s != Loading {
		return Unknown, s.invalidTransition(Loaded)
	}
	return Loaded, nil
}

// StartTransit transitions Loaded -> InTransit.
func (s Status) StartTransit() (Status, error) {
	if s != Loaded {
		return Unknown, s.invalidTransition(InTransit)
	}
	return InTransit, nil
}

// ReportDelivery transitions InTransit -> DeliveredPendingConfirmation.
func (s Status) ReportDelivery() (Status, error) {
	if s != InTransit {
		return Unknown, s.invalidTransition(DeliveredPendingConfirmation)
	}
	return DeliveredPendingConfirmation, nil
}

// ConfirmDelivery transitions DeliveredPendingConfirmation -> Delivered.
// Requires an explicit requester action, enforced by the command handler.
func (s Status) ConfirmDelivery() (Status, error) {
	if s != DeliveredPendingConfirmation {
		return Unknown, s.invalidTransition(Delivered)
	}
	return Delivered, nil
}

// Cancel transitions Accepted -> Cancelled. Withdrawal is only possible
// before loading starts.
func (s Status) Cancel() (Status, error) {
	if s != Accepted {
		return Unknown, s.invalidTransition(Cancelled)
	}
	return Cancelled, nil
}
