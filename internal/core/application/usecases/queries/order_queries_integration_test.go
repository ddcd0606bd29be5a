package queries_test

import (
	"context"
	"testing"
	"time"

	"coffeeshop/internal/adapters/out/postgres/coffeerepo"
	"coffeeshop/internal/adapters/out/postgres/customerrepo"
	"coffeeshop/internal/adapters/out/postgres/orderrepo"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/customer"
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

type OrderQueriesTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (suite *OrderQueriesTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&coffeerepo.CoffeeDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	suite.Require().NoError(err)
}

func (suite *OrderQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderQueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, customers, coffees CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderQueriesTestSuite) saveCustomer(email string) kernel.UUID {
	aggregate, err := customer.NewCustomer(kernel.NewUUID(), "Alice", email, "")
	suite.Require().NoError(err)

	repo := customerrepo.NewGormCustomerRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate.ID()
}

func (suite *OrderQueriesTestSuite) saveOrder(
	customerID kernel.UUID,
	status order.Status,
	prices ...string,
) *order.Order {
	items := make([]order.Item, 0, len(prices))
	for _, price := range prices {
		item, err := order.NewItem(kernel.NewUUID(), decimal.RequireFromString(price), 2)
		suite.Require().NoError(err)
		items = append(items, item)
	}

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, items, time.Now().UTC(), status)
	suite.Require().NoError(err)

	repo := orderrepo.NewGormOrderRepository(suite.db, &noopAggregateTracker{})
	suite.Require().NoError(repo.Add(context.Background(), aggregate))
	return aggregate
}

func (suite *OrderQueriesTestSuite) TestGetOrder_ReturnsFullReadModel() {
	customerID := suite.saveCustomer("alice@example.com")
	saved := suite.saveOrder(customerID, order.Pending, "2.50", "5.00")

	query, err := queries.NewGetOrderQuery(saved.ID())
	suite.Require().NoError(err)

	result, err := queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(result.ID.IsEqual(saved.ID()))
	suite.True(result.CustomerID.IsEqual(customerID))
	suite.Equal("PENDING", result.Status)
	suite.Len(result.Items, 2)
	suite.True(result.Total.Equal(decimal.RequireFromString("15.00")))
}

func (suite *OrderQueriesTestSuite) TestGetOrder_Unknown_ReturnsNotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestGetAllOrders_GroupsItemsPerOrder() {
	customerID := suite.saveCustomer("alice@example.com")
	suite.saveOrder(customerID, order.Pending, "2.50", "5.00")
	suite.saveOrder(customerID, order.Shipped, "3.00")

	query := queries.NewGetAllOrdersQuery()
	result, err := queries.NewGetAllOrdersQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(result, 2)
	itemCounts := []int{len(result[0].Items), len(result[1].Items)}
	suite.ElementsMatch([]int{2, 1}, itemCounts)
}

func (suite *OrderQueriesTestSuite) TestGetOrdersByStatus_FiltersByStatus() {
	customerID := suite.saveCustomer("alice@example.com")
	pending := suite.saveOrder(customerID, order.Pending, "2.50")
	suite.saveOrder(customerID, order.Delivered, "5.00")

	query, err := queries.NewGetOrdersByStatusQuery("PENDING")
	suite.Require().NoError(err)

	result, err := queries.NewGetOrdersByStatusQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(pending.ID()))
}

func (suite *OrderQueriesTestSuite) TestGetOrdersByCustomer_UnknownCustomer_ReturnsNotFound() {
	query, err := queries.NewGetOrdersByCustomerQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrdersByCustomerQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesTestSuite) TestGetOrdersByCustomer_NoOrders_ReturnsEmptySlice() {
	customerID := suite.saveCustomer("alice@example.com")

	query, err := queries.NewGetOrdersByCustomerQuery(customerID)
	suite.Require().NoError(err)

	result, err := queries.NewGetOrdersByCustomerQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestOrderQueriesTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderQueriesTestSuite))
}

// noopAggregateTracker satisfies the repositories' tracker dependency.
type noopAggregateTracker struct{}

func (n *noopAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}
