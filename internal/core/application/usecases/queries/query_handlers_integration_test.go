package queries_test

import (
	"context"
	"testing"
	"time"

	"freightbroker/internal/adapters/out/postgres"
	"freightbroker/internal/adapters/out/postgres/assignmentrepo"
	"freightbroker/internal/adapters/out/postgres/freightrepo"
	"freightbroker/internal/core/application/usecases/queries"
	"freightbroker/internal/core/domain/model/assignment"
	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/core/domain/services"
	"freightbroker/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// QueryHandlersIntegrationTestSuite exercises the read side against a real
// PostgreSQL, seeded through the write-side repositories.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container   *pgcontainer.PostgresContainer
	db          *gorm.DB
	freights    *freightrepo.GormFreightRepository
	assignments *assignmentrepo.GormAssignmentRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE freights, assignments CASCADE").Error)

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.freights = freightrepo.NewGormFreightRepository(suite.db, tracker)
	suite.assignments = assignmentrepo.NewGormAssignmentRepository(suite.db, tracker)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) money(cents int64) kernel.Money {
	m, err := kernel.NewMoneyFromCents(cents)
	suite.Require().NoError(err)
	return m
}

func (suite *QueryHandlersIntegrationTestSuite) seedFreight(
	requiredTrucks int,
	pricing freight.Pricing,
) *freight.Freight {
	f, err := freight.NewFreight(
		kernel.NewUUID(), kernel.NewUUID(), requiredTrucks,
		pricing, freight.CategoryGeneral, 5, freight.TierStandard,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.freights.Add(context.Background(), f))
	return f
}

func (suite *QueryHandlersIntegrationTestSuite) fixedPricing(cents int64) freight.Pricing {
	pricing, err := freight.NewFixedPricing(suite.money(cents), 12000, 420)
	suite.Require().NoError(err)
	return pricing
}

func (suite *QueryHandlersIntegrationTestSuite) reserveSlot(freightID kernel.UUID) {
	_, err := suite.freights.ReserveSlot(context.Background(), freightID)
	suite.Require().NoError(err)
}

func (suite *QueryHandlersIntegrationTestSuite) seedAssignment(
	freightID kernel.UUID,
	statuses ...assignment.Status,
) {
	ctx := context.Background()
	a, err := assignment.NewAssignment(
		kernel.NewUUID(), freightID, kernel.NewUUID(), kernel.NewUUID(),
		suite.money(100000), time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.assignments.Add(ctx, a))

	for _, target := range statuses {
		if target == assignment.Cancelled {
			suite.Require().NoError(a.Withdraw())
			continue
		}
		suite.Require().NoError(a.AdvanceTo(target))
	}
	if len(statuses) > 0 {
		suite.Require().NoError(suite.assignments.Update(ctx, a))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestEffectiveStatus_MultiTruck_HighestRankWins() {
	ctx := context.Background()
	f := suite.seedFreight(3, suite.fixedPricing(150000))

	suite.seedAssignment(f.ID())
	suite.seedAssignment(f.ID(), assignment.Loading, assignment.Loaded, assignment.InTransit)
	suite.seedAssignment(f.ID(), assignment.Cancelled)
	suite.reserveSlot(f.ID())
	suite.reserveSlot(f.ID())

	query, err := queries.NewGetEffectiveStatusQuery(f.ID())
	suite.Require().NoError(err)

	handler := queries.NewGetEffectiveStatusQueryHandler(suite.db)
	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(freight.InTransit, response.EffectiveStatus)
	suite.Equal(3, response.RequiredTrucks)
	suite.Equal(2, response.AcceptedTrucks)
	suite.Equal(1, response.RemainingSlots)
}

func (suite *QueryHandlersIntegrationTestSuite) TestEffectiveStatus_MultiTruck_OnlyCancelled_ReportsOpen() {
	ctx := context.Background()
	f := suite.seedFreight(2, suite.fixedPricing(150000))
	suite.seedAssignment(f.ID(), assignment.Cancelled)

	query, err := queries.NewGetEffectiveStatusQuery(f.ID())
	suite.Require().NoError(err)

	response, err := queries.NewGetEffectiveStatusQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(freight.Open, response.EffectiveStatus)
}

func (suite *QueryHandlersIntegrationTestSuite) TestEffectiveStatus_SingleTruck_FreightColumnIsAuthoritative() {
	ctx := context.Background()
	f := suite.seedFreight(1, suite.fixedPricing(150000))
	suite.Require().NoError(suite.freights.UpdateStatus(ctx, f.ID(), freight.Loading))

	query, err := queries.NewGetEffectiveStatusQuery(f.ID())
	suite.Require().NoError(err)

	response, err := queries.NewGetEffectiveStatusQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(freight.Loading, response.EffectiveStatus)
}

func (suite *QueryHandlersIntegrationTestSuite) TestEffectiveStatus_UnknownFreight_ReturnsNotFound() {
	query, err := queries.NewGetEffectiveStatusQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetEffectiveStatusQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestFreightQuote_PerKM_CarrierSeesBreakdown() {
	ctx := context.Background()
	pricing, err := freight.NewPerKMPricing(suite.money(250), 12000, 420)
	suite.Require().NoError(err)
	f := suite.seedFreight(1, pricing)

	query, err := queries.NewGetFreightQuoteQuery(f.ID(), services.RoleCarrier)
	suite.Require().NoError(err)

	response, err := queries.NewGetFreightQuoteQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("PER_KM", response.PricingType)
	suite.Equal(int64(105000), response.PrimaryLabel.Cents())
	suite.Require().NotNil(response.Breakdown)
	suite.Equal(int64(250), response.Breakdown.Rate.Cents())
	suite.Equal(420.0, response.Breakdown.Quantity)
	suite.Equal("km", response.Breakdown.Unit)
}

func (suite *QueryHandlersIntegrationTestSuite) TestFreightQuote_FleetOperator_BreakdownWithheld() {
	ctx := context.Background()
	f := suite.seedFreight(1, suite.fixedPricing(150000))
	floor := suite.money(120000)
	suite.Require().NoError(suite.freights.UpdateMinimumFloor(ctx, f.ID(), &floor))

	query, err := queries.NewGetFreightQuoteQuery(f.ID(), services.RoleFleetOperator)
	suite.Require().NoError(err)

	response, err := queries.NewGetFreightQuoteQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("FIXED", response.PricingType)
	suite.Equal(int64(150000), response.PrimaryLabel.Cents())
	suite.Nil(response.Breakdown)
	suite.Require().NotNil(response.MinimumFloor)
	suite.Equal(int64(120000), response.MinimumFloor.Cents())
}

func (suite *QueryHandlersIntegrationTestSuite) TestFreightQuote_UnknownFreight_ReturnsNotFound() {
	query, err := queries.NewGetFreightQuoteQuery(kernel.NewUUID(), services.RoleCarrier)
	suite.Require().NoError(err)

	_, err = queries.NewGetFreightQuoteQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestOpenFreights_ListsOnlyFreightsWithFreeSlots() {
	ctx := context.Background()

	open := suite.seedFreight(3, suite.fixedPricing(150000))

	filled := suite.seedFreight(1, suite.fixedPricing(150000))
	suite.reserveSlot(filled.ID())

	delivered := suite.seedFreight(1, suite.fixedPricing(150000))
	suite.Require().NoError(suite.freights.UpdateStatus(ctx, delivered.ID(), freight.Delivered))

	response, err := queries.NewGetOpenFreightsQueryHandler(suite.db).
		Handle(ctx, queries.NewGetOpenFreightsQuery())
	suite.Require().NoError(err)

	suite.Require().Len(response, 1)
	suite.True(response[0].ID.IsEqual(open.ID()))
	suite.Equal(3, response[0].RequiredTrucks)
	suite.Equal(0, response[0].AcceptedTrucks)
	suite.Equal(3, response[0].RemainingSlots)
	suite.Equal(freight.CategoryGeneral, response[0].CargoCategory)
	suite.Equal("FIXED", response[0].PricingType)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
