// Package http exposes the allocation engine over Echo. Handlers translate
// request bodies into constructor-validated commands and map the error
// taxonomy onto HTTP status codes; no business rule lives at this layer.
package http

import (
	"errors"
	"net/http"

	"freightbroker/internal/core/application/usecases/commands"
	"freightbroker/internal/core/application/usecases/queries"
	"freightbroker/internal/core/domain/model/assignment"
	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/domain/services"
	"freightbroker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorHeader carries the authenticated actor's identifier. Authentication
// itself happens upstream; the engine only checks ownership.
const actorHeader = "X-Actor-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createFreightHandler  commands.CreateFreightCommandHandler
	submitProposalHandler commands.SubmitProposalCommandHandler
	acceptProposalHandler commands.AcceptProposalCommandHandler
	transitionHandler     commands.TransitionAssignmentCommandHandler
	withdrawHandler       commands.WithdrawAssignmentCommandHandler
	paymentSentHandler    commands.ConfirmPaymentSentCommandHandler
	paymentRcvdHandler    commands.ConfirmPaymentReceivedCommandHandler

	// Query handlers
	effectiveStatusHandler queries.GetEffectiveStatusQueryHandler
	freightQuoteHandler    queries.GetFreightQuoteQueryHandler
	openFreightsHandler    queries.GetOpenFreightsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createFreightHandler commands.CreateFreightCommandHandler,
	submitProposalHandler commands.SubmitProposalCommandHandler,
	acceptProposalHandler commands.AcceptProposalCommandHandler,
	transitionHandler commands.TransitionAssignmentCommandHandler,
	withdrawHandler commands.WithdrawAssignmentCommandHandler,
	paymentSentHandler commands.ConfirmPaymentSentCommandHandler,
	paymentRcvdHandler commands.ConfirmPaymentReceivedCommandHandler,
	effectiveStatusHandler queries.GetEffectiveStatusQueryHandler,
	freightQuoteHandler queries.GetFreightQuoteQueryHandler,
	openFreightsHandler queries.GetOpenFreightsQueryHandler,
) *Server {
	return &Server{
		createFreightHandler:   createFreightHandler,
		submitProposalHandler:  submitProposalHandler,
		acceptProposalHandler:  acceptProposalHandler,
		transitionHandler:      transitionHandler,
		withdrawHandler:        withdrawHandler,
		paymentSentHandler:     paymentSentHandler,
		paymentRcvdHandler:     paymentRcvdHandler,
		effectiveStatusHandler: effectiveStatusHandler,
		freightQuoteHandler:    freightQuoteHandler,
		openFreightsHandler:    openFreightsHandler,
	}
}

// RegisterRoutes attaches all API routes to the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/freights", s.CreateFreight)
	api.GET("/freights", s.GetOpenFreights)
	api.GET("/freights/:id/status", s.GetEffectiveStatus)
	api.GET("/freights/:id/quote", s.GetFreightQuote)
	api.POST("/freights/:id/proposals", s.SubmitProposal)
	api.POST("/proposals/:id/accept", s.AcceptProposal)
	api.POST("/assignments/:id/transition", s.TransitionAssignment)
	api.POST("/assignments/:id/withdraw", s.WithdrawAssignment)
	api.POST("/assignments/:id/payment/sent", s.ConfirmPaymentSent)
	api.POST("/assignments/:id/payment/received", s.ConfirmPaymentReceived)
}

// CreateFreight handles POST /api/v1/freights - publishes a new freight.
func (s *Server) CreateFreight(ctx echo.Context) error {
	requesterID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+actorHeader+" header")
	}

	var req CreateFreightRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pricing, err := pricingFromRequest(req)
	if err != nil {
		return errorResponse(ctx, err)
	}

	freightID := kernel.NewUUID()
	cmd, err := commands.NewCreateFreightCommand(
		freightID,
		requesterID,
		req.RequiredTrucks,
		pricing,
		freight.CargoCategory(req.CargoCategory),
		req.AxleCount,
		freight.TableTier(req.TableTier),
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.createFreightHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateFreightResponse{ID: freightID.Bytes()})
}

// SubmitProposal handles POST /api/v1/freights/:id/proposals - a carrier
// submits a priced offer for one slot.
func (s *Server) SubmitProposal(ctx echo.Context) error {
	carrierID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+actorHeader+" header")
	}

	freightID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid freight id")
	}

	var req SubmitProposalRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.NewMoneyFromFloat(req.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	proposalID := kernel.NewUUID()
	cmd, err := commands.NewSubmitProposalCommand(proposalID, freightID, carrierID, price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.submitProposalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, SubmitProposalResponse{ID: proposalID.Bytes()})
}

// AcceptProposal handles POST /api/v1/proposals/:id/accept - the requester
// accepts a proposal, reserving a slot.
func (s *Server) AcceptProposal(ctx echo.Context) error {
	requesterID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+actorHeader+" header")
	}

	proposalID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid proposal id")
	}

	cmd, err := commands.NewAcceptProposalCommand(proposalID, requesterID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.acceptProposalHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AcceptProposalResponse{
		AssignmentID:   result.AssignmentID.Bytes(),
		RemainingSlots: result.RemainingSlots,
	})
}

// TransitionAssignment handles POST /api/v1/assignments/:id/transition -
// moves one assignment through the delivery state machine.
func (s *Server) TransitionAssignment(ctx echo.Context) error {
	aID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+actorHeader+" header")
	}

	assignmentID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid assignment id")
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := assignment.StatusFromString(req.Target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewTransitionAssignmentCommand(assignmentID, aID, target)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.transitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransitionResponse{
		AssignmentID:        result.AssignmentID.Bytes(),
		FreightID:           result.FreightID.Bytes(),
		Status:              result.Status.String(),
		AcceptedAt:          result.AcceptedAt,
		DeliveryConfirmedAt: result.DeliveryConfirmedAt,
	})
}

// WithdrawAssignment handles POST /api/v1/assignments/:id/withdraw - a
// carrier backs out of an accepted assignment against the withdrawal fee.
func (s *Server) WithdrawAssignment(ctx echo.Context) error {
	carrierID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+actorHeader+" header")
	}

	assignmentID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid assignment id")
	}

	cmd, err := commands.NewWithdrawAssignmentCommand(assignmentID, carrierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.withdrawHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WithdrawResponse{FreedSlot: result.FreedSlot})
}

// ConfirmPaymentSent handles POST /api/v1/assignments/:id/payment/sent -
// the producer marks the payment as sent.
func (s *Server) ConfirmPaymentSent(ctx echo.Context) error {
	requesterID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+actorHeader+" header")
	}

	assignmentID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid assignment id")
	}

	cmd, err := commands.NewConfirmPaymentSentCommand(assignmentID, requesterID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.paymentSentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmPaymentReceived handles POST /api/v1/assignments/:id/payment/received -
// the driver confirms the payment arrived.
func (s *Server) ConfirmPaymentReceived(ctx echo.Context) error {
	carrierID, err := actorID(ctx)
	if err != nil {
		return badRequest(ctx, "Missing or invalid "+actorHeader+" header")
	}

	assignmentID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid assignment id")
	}

	cmd, err := commands.NewConfirmPaymentReceivedCommand(assignmentID, carrierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err = s.paymentRcvdHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetEffectiveStatus handles GET /api/v1/freights/:id/status.
func (s *Server) GetEffectiveStatus(ctx echo.Context) error {
	freightID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid freight id")
	}

	query, err := queries.NewGetEffectiveStatusQuery(freightID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	status, err := s.effectiveStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, EffectiveStatusResponse{
		FreightID:       status.FreightID.Bytes(),
		EffectiveStatus: status.EffectiveStatus.String(),
		RequiredTrucks:  status.RequiredTrucks,
		AcceptedTrucks:  status.AcceptedTrucks,
		RemainingSlots:  status.RemainingSlots,
	})
}

// GetFreightQuote handles GET /api/v1/freights/:id/quote. The viewer role
// comes from the "role" query parameter and defaults to CARRIER.
func (s *Server) GetFreightQuote(ctx echo.Context) error {
	freightID, err := pathID(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid freight id")
	}

	roleParam := ctx.QueryParam("role")
	if roleParam == "" {
		roleParam = "CARRIER"
	}
	role, err := services.ViewerRoleFromString(roleParam)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetFreightQuoteQuery(freightID, role)
	if err != nil {
		return errorResponse(ctx, err)
	}

	quote, err := s.freightQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := QuoteResponse{
		FreightID:    quote.FreightID.Bytes(),
		PricingType:  quote.PricingType,
		PrimaryLabel: quote.PrimaryLabel.Float64(),
	}
	if quote.Breakdown != nil {
		response.Breakdown = &BreakdownResponse{
			Rate:     quote.Breakdown.Rate.Float64(),
			Quantity: quote.Breakdown.Quantity,
			Unit:     quote.Breakdown.Unit,
		}
	}
	if quote.MinimumFloor != nil {
		floor := quote.MinimumFloor.Float64()
		response.MinimumFloor = &floor
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOpenFreights handles GET /api/v1/freights - lists freights with
// unfilled slots.
func (s *Server) GetOpenFreights(ctx echo.Context) error {
	query := queries.NewGetOpenFreightsQuery()

	freights, err := s.openFreightsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]OpenFreightResponse, len(freights))
	for i, f := range freights {
		item := OpenFreightResponse{
			ID:             f.ID.Bytes(),
			RequiredTrucks: f.RequiredTrucks,
			AcceptedTrucks: f.AcceptedTrucks,
			RemainingSlots: f.RemainingSlots,
			CargoCategory:  string(f.CargoCategory),
			PricingType:    f.PricingType,
		}
		if f.MinimumFloor != nil {
			floor := f.MinimumFloor.Float64()
			item.MinimumFloor = &floor
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

func pricingFromRequest(req CreateFreightRequest) (freight.Pricing, error) {
	pricingType, err := freight.PricingTypeFromString(req.PricingType)
	if err != nil {
		return freight.Pricing{}, err
	}

	rateFor := func(v *float64, name string) (kernel.Money, error) {
		if v == nil {
			return kernel.Money{}, errs.NewValueIsRequiredError(name)
		}
		return kernel.NewMoneyFromFloat(*v)
	}

	switch pricingType {
	case freight.PricingFixed:
		price, rateErr := rateFor(req.Price, "price")
		if rateErr != nil {
			return freight.Pricing{}, rateErr
		}
		return freight.NewFixedPricing(price, req.WeightKG, req.DistanceKM)
	case freight.PricingPerKM:
		rate, rateErr := rateFor(req.PricePerKM, "pricePerKm")
		if rateErr != nil {
			return freight.Pricing{}, rateErr
		}
		return freight.NewPerKMPricing(rate, req.WeightKG, req.DistanceKM)
	case freight.PricingPerTon:
		rate, rateErr := rateFor(req.PricePerTon, "pricePerTon")
		if rateErr != nil {
			return freight.Pricing{}, rateErr
		}
		return freight.NewPerTonPricing(rate, req.WeightKG, req.DistanceKM)
	default:
		return freight.Pricing{}, errs.NewValueIsInvalidError("pricingType")
	}
}

func actorID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(actorHeader))
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps the error taxonomy onto HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
