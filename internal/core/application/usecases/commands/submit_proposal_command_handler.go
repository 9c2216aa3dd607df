package commands

import (
	"context"

	"freightbroker/internal/core/domain/model/proposal"
)

// SubmitProposalCommandHandler persists a pending proposal against an
// existing freight. Capacity and floor checks are deferred to acceptance;
// only existence of the freight gates submission.
type SubmitProposalCommandHandler struct {
	uowFactory ProposalUoWFactory
}

// NewSubmitProposalCommandHandler creates a handler for proposal submission.
func NewSubmitProposalCommandHandler(uowFactory ProposalUoWFactory) SubmitProposalCommandHandler {
	return SubmitProposalCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the proposal submission command.
// Returns an ObjectNotFoundError when the target freight does not exist.
func (h SubmitProposalCommandHandler) Handle(ctx context.Context, cmd SubmitProposalCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.FreightRepository().Get(ctx, cmd.FreightID()); err != nil {
		return err
	}

	newProposal, err := proposal.NewProposal(cmd.ProposalID(), cmd.FreightID(), cmd.CarrierID(), cmd.Price())
	if err != nil {
		return err
	}

	if err = uow.ProposalRepository().Add(ctx, newProposal); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
