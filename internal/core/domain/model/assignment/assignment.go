package assignment

import (
	"errors"
	"time"

	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/errs"
	"freightbroker/internal/pkg/guard"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment instance
	// was not created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment")

	// ErrAgreedPriceIsNotPositive is returned when the agreed price is zero or negative.
	ErrAgreedPriceIsNotPositive = errs.NewValueIsInvalidError("agreedPrice must be greater than zero")

	// ErrPaymentAlreadyConfirmed is returned when a payment side tries to
	// confirm twice.
	ErrPaymentAlreadyConfirmed = errs.NewValueIsInvalidError("payment is already confirmed for this party")
)

// Assignment is the accepted binding of one carrier to one freight slot.
// It is created by the acceptance protocol with the proposal's full per-truck
// price as agreedPrice and then progresses independently through the delivery
// state machine.
//
// Payment confirmation is a parallel two-party handshake: the producer marks
// payment sent, the driver confirms receipt. Neither gates delivery
// transitions, but both are required before the carrier may rate the freight.
type Assignment struct {
	id          kernel.UUID
	freightID   kernel.UUID
	carrierID   kernel.UUID
	proposalID  kernel.UUID
	agreedPrice kernel.Money
	status      Status

	acceptedAt                   time.Time
	deliveryConfirmedAt          *time.Time
	paymentConfirmedByProducerAt *time.Time
	paymentConfirmedByDriverAt   *time.Time

	guard guard.ConstructorGuard
}

// NewAssignment creates an accepted assignment for a freight slot.
// The agreed price is the proposal's full per-truck price; it is never the
// freight price divided by the fleet size.
func NewAssignment(
	id, freightID, carrierID, proposalID kernel.UUID,
	agreedPrice kernel.Money,
	acceptedAt time.Time,
) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		freightID.Validate(),
		carrierID.Validate(),
		proposalID.Validate(),
	); err != nil {
		return nil, err
	}
	if !agreedPrice.IsPositive() {
		return nil, ErrAgreedPriceIsNotPositive
	}

	return &Assignment{
		id:          id,
		freightID:   freightID,
		carrierID:   carrierID,
		proposalID:  proposalID,
		agreedPrice: agreedPrice,
		status:      Accepted,
		acceptedAt:  acceptedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreAssignment reconstructs an assignment from persistence.
func RestoreAssignment(
	id, freightID, carrierID, proposalID kernel.UUID,
	agreedPrice kernel.Money,
	status Status,
	acceptedAt time.Time,
	deliveryConfirmedAt, paymentConfirmedByProducerAt, paymentConfirmedByDriverAt *time.Time,
) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		freightID.Validate(),
		carrierID.Validate(),
		proposalID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Assignment{
		id:                           id,
		freightID:                    freightID,
		carrierID:                    carrierID,
		proposalID:                   proposalID,
		agreedPrice:                  agreedPrice,
		status:                       status,
		acceptedAt:                   acceptedAt,
		deliveryConfirmedAt:          deliveryConfirmedAt,
		paymentConfirmedByProducerAt: paymentConfirmedByProducerAt,
		paymentConfirmedByDriverAt:   paymentConfirmedByDriverAt,
		guard:                        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the assignment was built through a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// FreightID returns the freight whose slot this assignment fills.
func (a *Assignment) FreightID() kernel.UUID {
	return a.freightID
}

// CarrierID returns the carrier bound to the slot.
func (a *Assignment) CarrierID() kernel.UUID {
	return a.carrierID
}

// ProposalID returns the originating proposal.
func (a *Assignment) ProposalID() kernel.UUID {
	return a.proposalID
}

// AgreedPrice returns the full per-truck price agreed at acceptance.
func (a *Assignment) AgreedPrice() kernel.Money {
	return a.agreedPrice
}

// Status returns the current delivery state.
func (a *Assignment) Status() Status {
	return a.status
}

// AcceptedAt returns the acceptance timestamp.
func (a *Assignment) AcceptedAt() time.Time {
	return a.acceptedAt
}

// DeliveryConfirmedAt returns when the requester confirmed delivery, if ever.
func (a *Assignment) DeliveryConfirmedAt() *time.Time {
	return a.deliveryConfirmedAt
}

// PaymentConfirmedByProducerAt returns when the producer marked payment sent.
func (a *Assignment) PaymentConfirmedByProducerAt() *time.Time {
	return a.paymentConfirmedByProducerAt
}

// PaymentConfirmedByDriverAt returns when the driver confirmed payment receipt.
func (a *Assignment) PaymentConfirmedByDriverAt() *time.Time {
	return a.paymentConfirmedByDriverAt
}

// IsActive reports whether the assignment still occupies a freight slot.
func (a *Assignment) IsActive() bool {
	return a.status.IsActive()
}

// IsOwnedByCarrier reports whether the given actor is the assignment's carrier.
func (a *Assignment) IsOwnedByCarrier(carrierID kernel.UUID) bool {
	return a.carrierID.IsEqual(carrierID)
}

// AdvanceTo moves the assignment to the target delivery state, enforcing the
// state machine. ConfirmDelivery and Withdraw have dedicated methods because
// they carry extra effects.
func (a *Assignment) AdvanceTo(target Status) error {
	var (
		next Status
		err  error
	)

	switch target {
	case Loading:
		next, err = a.status.StartLoading()
	case Loaded:
		next, err = a.status.FinishLoading()
	case InTransit:
		next, err = a.status.StartTransit()
	case DeliveredPendingConfirmation:
		next, err = a.status.ReportDelivery()
	default:
		return a.status.invalidTransition(target)
	}

	if err != nil {
		return err
	}
	a.status = next
	return nil
}

// ConfirmDelivery completes the assignment on the requester's explicit
// confirmation and records the confirmation time.
func (a *Assignment) ConfirmDelivery(confirmedAt time.Time) error {
	next, err := a.status.ConfirmDelivery()
	if err != nil {
		return err
	}
	a.status = next
	a.deliveryConfirmedAt = &confirmedAt
	return nil
}

// Withdraw cancels the assignment on the carrier's initiative. Allowed from
// Accepted only; the released slot is returned to the freight by the caller's
// transaction.
func (a *Assignment) Withdraw() error {
	next, err := a.status.Cancel()
	if err != nil {
		return err
	}
	a.status = next
	return nil
}

// ConfirmPaymentByProducer records the producer-side payment confirmation.
func (a *Assignment) ConfirmPaymentByProducer(confirmedAt time.Time) error {
	if a.paymentConfirmedByProducerAt != nil {
		return ErrPaymentAlreadyConfirmed
	}
	a.paymentConfirmedByProducerAt = &confirmedAt
	return nil
}

// ConfirmPaymentByDriver records the driver-side payment confirmation.
func (a *Assignment) ConfirmPaymentByDriver(confirmedAt time.Time) error {
	if a.paymentConfirmedByDriverAt != nil {
		return ErrPaymentAlreadyConfirmed
	}
	a.paymentConfirmedByDriverAt = &confirmedAt
	return nil
}

// CanBeRated reports whether the carrier may submit a rating for the freight:
// both sides of the payment handshake must have confirmed.
func (a *Assignment) CanBeRated() bool {
	return a.paymentConfirmedByProducerAt != nil && a.paymentConfirmedByDriverAt != nil
}
