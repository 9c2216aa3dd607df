package http

import (
	"time"

	"github.com/google/uuid"
)

// ErrorResponse is the uniform error body of the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateFreightRequest is the body of POST /api/v1/freights.
// Exactly one of price, pricePerKm, pricePerTon is set, matching pricingType.
type CreateFreightRequest struct {
	RequiredTrucks int      `json:"requiredTrucks"`
	PricingType    string   `json:"pricingType"`
	Price          *float64 `json:"price,omitempty"`
	PricePerKM     *float64 `json:"pricePerKm,omitempty"`
	PricePerTon    *float64 `json:"pricePerTon,omitempty"`
	WeightKG       float64  `json:"weightKg"`
	DistanceKM     float64  `json:"distanceKm"`
	CargoCategory  string   `json:"cargoCategory"`
	AxleCount      int      `json:"axleCount"`
	TableTier      string   `json:"tableTier"`
}

// CreateFreightResponse returns the identifier of the created freight.
type CreateFreightResponse struct {
	ID uuid.UUID `json:"id"`
}

// SubmitProposalRequest is the body of POST /api/v1/freights/:id/proposals.
type SubmitProposalRequest struct {
	Price float64 `json:"price"`
}

// SubmitProposalResponse returns the identifier of the created proposal.
type SubmitProposalResponse struct {
	ID uuid.UUID `json:"id"`
}

// AcceptProposalResponse reports the outcome of a successful acceptance.
type AcceptProposalResponse struct {
	AssignmentID   uuid.UUID `json:"assignmentId"`
	RemainingSlots int       `json:"remainingSlots"`
}

// TransitionRequest is the body of POST /api/v1/assignments/:id/transition.
type TransitionRequest struct {
	Target string `json:"target"`
}

// TransitionResponse returns the assignment state after a transition.
type TransitionResponse struct {
	AssignmentID        uuid.UUID  `json:"assignmentId"`
	FreightID           uuid.UUID  `json:"freightId"`
	Status              string     `json:"status"`
	AcceptedAt          time.Time  `json:"acceptedAt"`
	DeliveryConfirmedAt *time.Time `json:"deliveryConfirmedAt,omitempty"`
}

// WithdrawResponse reports the outcome of a successful withdrawal.
type WithdrawResponse struct {
	FreedSlot bool `json:"freedSlot"`
}

// EffectiveStatusResponse is the body of GET /api/v1/freights/:id/status.
type EffectiveStatusResponse struct {
	FreightID       uuid.UUID `json:"freightId"`
	EffectiveStatus string    `json:"effectiveStatus"`
	RequiredTrucks  int       `json:"requiredTrucks"`
	AcceptedTrucks  int       `json:"acceptedTrucks"`
	RemainingSlots  int       `json:"remainingSlots"`
}

// BreakdownResponse is the gated cost detail behind a primary price label.
type BreakdownResponse struct {
	Rate     float64 `json:"rate"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// QuoteResponse is the body of GET /api/v1/freights/:id/quote.
type QuoteResponse struct {
	FreightID    uuid.UUID          `json:"freightId"`
	PricingType  string             `json:"pricingType"`
	PrimaryLabel float64            `json:"primaryLabel"`
	Breakdown    *BreakdownResponse `json:"breakdown,omitempty"`
	MinimumFloor *float64           `json:"minimumFloor,omitempty"`
}

// OpenFreightResponse is one row of GET /api/v1/freights.
type OpenFreightResponse struct {
	ID             uuid.UUID `json:"id"`
	RequiredTrucks int       `json:"requiredTrucks"`
	AcceptedTrucks int       `json:"acceptedTrucks"`
	RemainingSlots int       `json:"remainingSlots"`
	CargoCategory  string    `json:"cargoCategory"`
	PricingType    string    `json:"pricingType"`
	MinimumFloor   *float64  `json:"minimumFloor,omitempty"`
}
