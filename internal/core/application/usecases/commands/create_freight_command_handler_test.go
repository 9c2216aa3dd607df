package commands_test

import (
	"context"
	"testing"

	"freightbroker/internal/core/application/usecases/commands"
	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateFreightCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	cmd, err := commands.NewCreateFreightCommand(
		kernel.NewUUID(), kernel.NewUUID(), 3,
		testPricing(t), freight.CategoryRefrigerated, 6, freight.TierStandard,
	)
	require.NoError(t, err)

	rates := new(MockRateTableRepository)
	// Exact category row present: floor = 3.00*420 + 140.00 = 1400.00.
	rates.On("Lookup", ctx, freight.CategoryRefrigerated, 6, freight.TierStandard).
		Return(freight.Rate{CostPerKM: 3.00, FixedCharge: 140}, nil).Once()

	freightRepo := new(MockFreightRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FreightRepository").Return(freightRepo).Once(),
		freightRepo.On("Add", ctx, mock.AnythingOfType("*freight.Freight")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFreightUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateFreightCommandHandler(factory, rates)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := freightRepo.Calls[0].Arguments[1].(*freight.Freight)
	assert.Equal(t, freight.Open, added.Status())
	assert.Equal(t, 0, added.AcceptedTrucks())
	require.NotNil(t, added.MinimumFloor())
	assert.Equal(t, int64(140000), added.MinimumFloor().Cents())
	uow.AssertExpectations(t)
}

func TestCreateFreightCommandHandler_Handle_NoRateRow_NotEnforceable(t *testing.T) {
	ctx := context.Background()

	cmd, err := commands.NewCreateFreightCommand(
		kernel.NewUUID(), kernel.NewUUID(), 1,
		testPricing(t), freight.CategoryDangerous, 7, freight.TierHighPerformance,
	)
	require.NoError(t, err)

	rates := new(MockRateTableRepository)
	rates.On("Lookup", ctx, freight.CategoryDangerous, 7, freight.TierHighPerformance).
		Return(freight.Rate{}, errs.NewObjectNotFoundError("rate", "DANGEROUS")).Once()
	rates.On("Lookup", ctx, freight.CategoryGeneral, 7, freight.TierHighPerformance).
		Return(freight.Rate{}, errs.NewObjectNotFoundError("rate", "GENERAL")).Once()

	freightRepo := new(MockFreightRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("FreightRepository").Return(freightRepo).Once(),
		freightRepo.On("Add", ctx, mock.AnythingOfType("*freight.Freight")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFreightUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateFreightCommandHandler(factory, rates)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	added := freightRepo.Calls[0].Arguments[1].(*freight.Freight)
	assert.Nil(t, added.MinimumFloor(), "missing rate rows must publish without a floor, not with zero")
	rates.AssertExpectations(t)
}

func TestCreateFreightCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := context.Background()
	cmd := commands.CreateFreightCommand{} // not constructed properly

	factory := new(MockFreightUoWFactory)
	handler := commands.NewCreateFreightCommandHandler(factory, new(MockRateTableRepository))
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCreateFreightCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
