package pizzarepo_test

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/adapters/out/postgres/pizzarepo"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/menu"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// PizzaRepositoryIntegrationTestSuite provides integration tests for
// GormPizzaRepository using a PostgreSQL container.
type PizzaRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *pizzarepo.GormPizzaRepository
}

func (suite *PizzaRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&pizzarepo.PizzaDTO{}))
}

func (suite *PizzaRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE pizzas").Error)
	suite.repository = pizzarepo.NewGormPizzaRepository(suite.db)
}

func (suite *PizzaRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PizzaRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrips() {
	ctx := context.Background()

	original := suite.createPizza("Margherita", "8.50", true)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(original.ID()))
	suite.Equal("Margherita", retrieved.Name())
	suite.True(retrieved.Price().Equal(decimal.RequireFromString("8.50")))
	suite.True(retrieved.Available())
}

func (suite *PizzaRepositoryIntegrationTestSuite) TestAdd_DuplicateName_ReturnsAlreadyExists() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createPizza("Diavola", "9.00", true)))

	err := suite.repository.Add(ctx, suite.createPizza("Diavola", "9.50", true))
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *PizzaRepositoryIntegrationTestSuite) TestGet_Unknown_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *PizzaRepositoryIntegrationTestSuite) TestGetAllAvailable_ExcludesUnavailableAndSortsByName() {
	ctx := context.Background()

	suite.Require().NoError(suite.repository.Add(ctx, suite.createPizza("Marinara", "7.00", true)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createPizza("Diavola", "9.00", true)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createPizza("Quattro Stagioni", "10.00", false)))

	available, err := suite.repository.GetAllAvailable(ctx)
	suite.Require().NoError(err)

	suite.Require().Len(available, 2)
	suite.Equal("Diavola", available[0].Name())
	suite.Equal("Marinara", available[1].Name())
}

func (suite *PizzaRepositoryIntegrationTestSuite) TestCount() {
	ctx := context.Background()

	count, err := suite.repository.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(0), count)

	suite.Require().NoError(suite.repository.Add(ctx, suite.createPizza("Margherita", "8.50", true)))
	suite.Require().NoError(suite.repository.Add(ctx, suite.createPizza("Diavola", "9.00", false)))

	count, err = suite.repository.Count(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), count)
}

func (suite *PizzaRepositoryIntegrationTestSuite) createPizza(name, price string, available bool) *menu.Pizza {
	pizza, err := menu.NewPizza(
		kernel.NewUUID(),
		name,
		"",
		decimal.RequireFromString(price),
		available,
	)
	suite.Require().NoError(err)

	return pizza
}

func TestPizzaRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PizzaRepositoryIntegrationTestSuite))
}
