package coffeerepo_test

import (
	"context"
	"testing"
	"time"

	"coffeeshop/internal/adapters/out/postgres/coffeerepo"
	"coffeeshop/internal/core/domain/model/coffee"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CoffeeRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *coffeerepo.GormCoffeeRepository
}

func (suite *CoffeeRepositoryTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&coffeerepo.CoffeeDTO{})
	suite.Require().NoError(err)

	suite.repo = coffeerepo.NewGormCoffeeRepository(db, &noopAggregateTracker{})
}

func (suite *CoffeeRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *CoffeeRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE coffees CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *CoffeeRepositoryTestSuite) newCoffee(name, price string) *coffee.Coffee {
	aggregate, err := coffee.NewCoffee(
		kernel.NewUUID(), name, decimal.RequireFromString(price), "https://img/"+name+".png")
	suite.Require().NoError(err)
	return aggregate
}

func (suite *CoffeeRepositoryTestSuite) TestAddAndGet_RoundTripsAggregate() {
	ctx := context.Background()
	aggregate := suite.newCoffee("Espresso", "2.50")

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("Espresso", loaded.Name())
	suite.True(loaded.Price().Equal(decimal.RequireFromString("2.50")))
	suite.Equal("https://img/Espresso.png", loaded.ImageURL())
}

func (suite *CoffeeRepositoryTestSuite) TestAdd_DuplicateName_ReturnsAlreadyExists() {
	ctx := context.Background()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newCoffee("Espresso", "2.50")))

	err := suite.repo.Add(ctx, suite.newCoffee("Espresso", "3.00"))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *CoffeeRepositoryTestSuite) TestGetByName_FindsCoffee() {
	ctx := context.Background()
	aggregate := suite.newCoffee("Latte", "5.00")
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	loaded, err := suite.repo.GetByName(ctx, "Latte")
	suite.Require().NoError(err)
	suite.True(loaded.ID().IsEqual(aggregate.ID()))
}

func (suite *CoffeeRepositoryTestSuite) TestGetByName_Unknown_ReturnsNotFound() {
	_, err := suite.repo.GetByName(context.Background(), "Mocha")
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CoffeeRepositoryTestSuite) TestUpdate_PersistsChanges() {
	ctx := context.Background()
	aggregate := suite.newCoffee("Espresso", "2.50")
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	err := aggregate.Update("Doppio", decimal.RequireFromString("3.50"), "https://img/doppio.png")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Update(ctx, aggregate))

	loaded, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal("Doppio", loaded.Name())
	suite.True(loaded.Price().Equal(decimal.RequireFromString("3.50")))
}

func (suite *CoffeeRepositoryTestSuite) TestDelete_RemovesCoffee() {
	ctx := context.Background()
	aggregate := suite.newCoffee("Espresso", "2.50")
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	suite.Require().NoError(suite.repo.Delete(ctx, aggregate.ID()))

	_, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestCoffeeRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CoffeeRepositoryTestSuite))
}

// noopAggregateTracker satisfies the repository's tracker dependency.
type noopAggregateTracker struct{}

func (n *noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
