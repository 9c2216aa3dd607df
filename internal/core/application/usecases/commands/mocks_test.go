package commands_test

import (
	"context"

	"freightbroker/internal/core/application/usecases/commands"
	"freightbroker/internal/core/domain/model/assignment"
	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/history"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/domain/model/proposal"
	"freightbroker/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockFreightRepository struct{ mock.Mock }

func (m *MockFreightRepository) Add(ctx context.Context, f *freight.Freight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFreightRepository) Update(ctx context.Context, f *freight.Freight) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFreightRepository) Get(ctx context.Context, id kernel.UUID) (*freight.Freight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*freight.Freight), args.Error(1)
}

func (m *MockFreightRepository) GetAllOpen(ctx context.Context) ([]*freight.Freight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*freight.Freight), args.Error(1)
}

func (m *MockFreightRepository) ReserveSlot(ctx context.Context, id kernel.UUID) (int, error) {
	args := m.Called(ctx, id)
	return args.Int(0), args.Error(1)
}

func (m *MockFreightRepository) ReleaseSlot(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFreightRepository) BindDriver(ctx context.Context, id, driverID kernel.UUID) error {
	args := m.Called(ctx, id, driverID)
	return args.Error(0)
}

func (m *MockFreightRepository) ClearDriver(ctx context.Context, id, driverID kernel.UUID) error {
	args := m.Called(ctx, id, driverID)
	return args.Error(0)
}

func (m *MockFreightRepository) UpdateStatus(ctx context.Context, id kernel.UUID, status freight.Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockFreightRepository) UpdateMinimumFloor(ctx context.Context, id kernel.UUID, floor *kernel.Money) error {
	args := m.Called(ctx, id, floor)
	return args.Error(0)
}

type MockProposalRepository struct{ mock.Mock }

func (m *MockProposalRepository) Add(ctx context.Context, p *proposal.Proposal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProposalRepository) Update(ctx context.Context, p *proposal.Proposal) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProposalRepository) Get(ctx context.Context, id kernel.UUID) (*proposal.Proposal, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*proposal.Proposal), args.Error(1)
}

func (m *MockProposalRepository) GetAllPendingByFreight(
	ctx context.Context, freightID kernel.UUID,
) ([]*proposal.Proposal, error) {
	args := m.Called(ctx, freightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*proposal.Proposal), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) ActiveExists(ctx context.Context, freightID, carrierID kernel.UUID) (bool, error) {
	args := m.Called(ctx, freightID, carrierID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveStatusesByFreight(
	ctx context.Context, freightID kernel.UUID,
) ([]assignment.Status, error) {
	args := m.Called(ctx, freightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]assignment.Status), args.Error(1)
}

func (m *MockAssignmentRepository) GetPriceMismatches(ctx context.Context) ([]ports.PriceMismatch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.PriceMismatch), args.Error(1)
}

func (m *MockAssignmentRepository) RepairAgreedPrice(
	ctx context.Context, id kernel.UUID, price, repairedFrom kernel.Money,
) error {
	args := m.Called(ctx, id, price, repairedFrom)
	return args.Error(0)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Merge(ctx context.Context, snapshot history.Snapshot) error {
	args := m.Called(ctx, snapshot)
	return args.Error(0)
}

type MockRateTableRepository struct{ mock.Mock }

func (m *MockRateTableRepository) Lookup(
	ctx context.Context, category freight.CargoCategory, axleCount int, tier freight.TableTier,
) (freight.Rate, error) {
	args := m.Called(ctx, category, axleCount, tier)
	return args.Get(0).(freight.Rate), args.Error(1)
}

func (m *MockRateTableRepository) Version(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) ProposalAccepted(ctx context.Context, freightID, carrierID kernel.UUID, remainingSlots int) {
	m.Called(ctx, freightID, carrierID, remainingSlots)
}

func (m *MockNotificationSink) AssignmentWithdrawn(ctx context.Context, freightID, carrierID kernel.UUID) {
	m.Called(ctx, freightID, carrierID)
}

func (m *MockNotificationSink) DeliveryConfirmed(ctx context.Context, freightID, carrierID kernel.UUID) {
	m.Called(ctx, freightID, carrierID)
}

type MockPayoutLedger struct{ mock.Mock }

func (m *MockPayoutLedger) RecordWithdrawalFee(
	ctx context.Context, carrierID, assignmentID kernel.UUID, fee kernel.Money,
) error {
	args := m.Called(ctx, carrierID, assignmentID, fee)
	return args.Error(0)
}

// MockUoW satisfies every unit of work shape used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) FreightRepository() ports.FreightRepository {
	args := m.Called()
	return args.Get(0).(ports.FreightRepository)
}

func (m *MockUoW) ProposalRepository() ports.ProposalRepository {
	args := m.Called()
	return args.Get(0).(ports.ProposalRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

type MockFreightUoWFactory struct{ mock.Mock }

func (m *MockFreightUoWFactory) Create() commands.FreightUoW {
	args := m.Called()
	return args.Get(0).(commands.FreightUoW)
}

type MockProposalUoWFactory struct{ mock.Mock }

func (m *MockProposalUoWFactory) Create() commands.ProposalUoW {
	args := m.Called()
	return args.Get(0).(commands.ProposalUoW)
}

type MockAllocationUoWFactory struct{ mock.Mock }

func (m *MockAllocationUoWFactory) Create() commands.AllocationUoW {
	args := m.Called()
	return args.Get(0).(commands.AllocationUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}
