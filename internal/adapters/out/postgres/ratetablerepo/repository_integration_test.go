package ratetablerepo_test

import (
	"context"
	"testing"
	"time"

	"freightbroker/internal/adapters/out/postgres"
	"freightbroker/internal/adapters/out/postgres/ratetablerepo"
	"freightbroker/internal/core/domain/model/freight"
	"freightbroker/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// RateTableRepositoryIntegrationTestSuite verifies rate table reads against a
// real PostgreSQL.
type RateTableRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *pgcontainer.PostgresContainer
	db         *gorm.DB
	repository *ratetablerepo.GormRateTableRepository
}

func (suite *RateTableRepositoryIntegrationTestSuite) SetupSuite() {
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

func (suite *RateTableRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE rate_table").Error)
	suite.repository = ratetablerepo.NewGormRateTableRepository(suite.db)
}

func (suite *RateTableRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RateTableRepositoryIntegrationTestSuite) seedRow(
	category string, axles int, tier string, costPerKM, fixedCharge float64, version string,
) {
	row := ratetablerepo.RateRowDTO{
		CargoCategory: category,
		AxleCount:     axles,
		TableTier:     tier,
		CostPerKM:     costPerKM,
		FixedCharge:   fixedCharge,
		Version:       version,
	}
	suite.Require().NoError(suite.db.Create(&row).Error)
}

func (suite *RateTableRepositoryIntegrationTestSuite) TestLookup_ReturnsMatchingRow() {
	suite.seedRow("REFRIGERATED", 6, "STANDARD", 8.45, 1200.50, "2026-01")
	suite.seedRow("GENERAL", 6, "STANDARD", 5.10, 800.00, "2026-01")

	rate, err := suite.repository.Lookup(
		context.Background(), freight.CategoryRefrigerated, 6, freight.TierStandard)

	suite.Require().NoError(err)
	suite.Equal(8.45, rate.CostPerKM)
	suite.Equal(1200.50, rate.FixedCharge)
}

func (suite *RateTableRepositoryIntegrationTestSuite) TestLookup_MissingCombination_ReturnsNotFound() {
	suite.seedRow("GENERAL", 6, "STANDARD", 5.10, 800.00, "2026-01")

	_, err := suite.repository.Lookup(
		context.Background(), freight.CategoryDangerous, 6, freight.TierStandard)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RateTableRepositoryIntegrationTestSuite) TestVersion_ReturnsLoadedEdition() {
	suite.seedRow("GENERAL", 5, "STANDARD", 5.10, 800.00, "2026-01")
	suite.seedRow("GENERAL", 6, "STANDARD", 5.35, 820.00, "2026-02")

	version, err := suite.repository.Version(context.Background())

	suite.Require().NoError(err)
	suite.Equal("2026-02", version)
}

func (suite *RateTableRepositoryIntegrationTestSuite) TestVersion_EmptyTable_ReportsUnversioned() {
	version, err := suite.repository.Version(context.Background())

	suite.Require().NoError(err)
	suite.Equal("unversioned", version)
}

func TestRateTableRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RateTableRepositoryIntegrationTestSuite))
}
