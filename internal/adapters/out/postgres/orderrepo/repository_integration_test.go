package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"coffeeshop/internal/adapters/out/postgres/orderrepo"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, &noopAggregateTracker{})
}

func (suite *OrderRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryTestSuite) newPendingOrder(itemCount int) *order.Order {
	items := make([]order.Item, 0, itemCount)
	for range itemCount {
		item, err := order.NewItem(kernel.NewUUID(), decimal.RequireFromString("2.50"), 2)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), items, time.Now().UTC())
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryTestSuite) TestAddAndGet_RoundTripsAggregate() {
	ctx := context.Background()
	aggregate := suite.newPendingOrder(2)

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)

	suite.True(loaded.ID().IsEqual(aggregate.ID()))
	suite.True(loaded.CustomerID().IsEqual(aggregate.CustomerID()))
	suite.Equal(order.Pending, loaded.Status())
	suite.Len(loaded.Items(), 2)
	suite.True(loaded.Total().Equal(aggregate.Total()))
}

func (suite *OrderRepositoryTestSuite) TestGet_UnknownID_ReturnsNotFound() {
	_, err := suite.repo.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestUpdate_ReplacesItems() {
	ctx := context.Background()
	aggregate := suite.newPendingOrder(2)
	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	replacement, err := order.NewItem(kernel.NewUUID(), decimal.RequireFromString("5.00"), 1)
	suite.Require().NoError(err)
	err = aggregate.ReplaceItems([]order.Item{replacement})
	suite.Require().NoError(err)

	err = suite.repo.Update(ctx, aggregate)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Len(loaded.Items(), 1)
	suite.True(loaded.Items()[0].CoffeeID().IsEqual(replacement.CoffeeID()))
	suite.True(loaded.Total().Equal(decimal.RequireFromString("5.00")))
}

func (suite *OrderRepositoryTestSuite) TestUpdate_UnknownOrder_ReturnsNotFound() {
	err := suite.repo.Update(context.Background(), suite.newPendingOrder(1))
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) TestGetAllPendingBefore_FiltersByStatusAndDate() {
	ctx := context.Background()

	staleItems := []order.Item{suite.mustItem("2.50", 1)}
	stale, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), staleItems,
		time.Now().UTC().Add(-2*time.Hour), order.Pending)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, stale))

	fresh := suite.newPendingOrder(1)
	suite.Require().NoError(suite.repo.Add(ctx, fresh))

	shippedItems := []order.Item{suite.mustItem("2.50", 1)}
	shipped, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), shippedItems,
		time.Now().UTC().Add(-2*time.Hour), order.Shipped)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repo.Add(ctx, shipped))

	result, err := suite.repo.GetAllPendingBefore(ctx, time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID().IsEqual(stale.ID()))
}

func (suite *OrderRepositoryTestSuite) TestDelete_CascadesItems() {
	ctx := context.Background()
	aggregate := suite.newPendingOrder(2)
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	err := suite.repo.Delete(ctx, aggregate.ID())
	suite.Require().NoError(err)

	_, err = suite.repo.Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var itemCount int64
	err = suite.db.Model(&orderrepo.OrderItemDTO{}).
		Where("order_id = ?", aggregate.ID().Bytes()).
		Count(&itemCount).Error
	suite.Require().NoError(err)
	suite.Zero(itemCount)
}

func (suite *OrderRepositoryTestSuite) TestDelete_UnknownID_ReturnsNotFound() {
	err := suite.repo.Delete(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryTestSuite) mustItem(price string, quantity int) order.Item {
	item, err := order.NewItem(kernel.NewUUID(), decimal.RequireFromString(price), quantity)
	suite.Require().NoError(err)
	return item
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderRepositoryTestSuite))
}

// noopAggregateTracker satisfies the repository's tracker dependency.
type noopAggregateTracker struct{}

func (n *noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
