package services_test

import (
	"context"
	"testing"

	"coffeeshop/internal/core/domain/model/coffee"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCoffeeCatalog struct{ mock.Mock }

func (m *MockCoffeeCatalog) Get(ctx context.Context, id kernel.UUID) (*coffee.Coffee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*coffee.Coffee), args.Error(1)
}

func catalogCoffee(t *testing.T, id kernel.UUID, price string) *coffee.Coffee {
	t.Helper()
	c, err := coffee.NewCoffee(id, "Espresso", decimal.RequireFromString(price), "url")
	require.NoError(t, err)
	return c
}

func TestNewOrderItemValidator(t *testing.T) {
	t.Run("requires a catalog", func(t *testing.T) {
		_, err := services.NewOrderItemValidator(nil)
		require.ErrorIs(t, err, services.ErrCatalogIsRequired)
	})

	t.Run("constructs with a catalog", func(t *testing.T) {
		_, err := services.NewOrderItemValidator(new(MockCoffeeCatalog))
		require.NoError(t, err)
	})
}

func TestOrderItemValidator_Validate(t *testing.T) {
	ctx := t.Context()
	coffeeID := kernel.NewUUID()

	t.Run("returns item with price snapshot and marks coffee as seen", func(t *testing.T) {
		catalog := new(MockCoffeeCatalog)
		catalog.On("Get", ctx, coffeeID).Return(catalogCoffee(t, coffeeID, "2.50"), nil).Once()
		validator, _ := services.NewOrderItemValidator(catalog)
		seen := make(map[kernel.UUID]struct{})

		item, err := validator.Validate(ctx, services.ItemRequest{CoffeeID: coffeeID, Quantity: 2}, seen)

		require.NoError(t, err)
		assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("5.00")))
		assert.Contains(t, seen, coffeeID)
		catalog.AssertExpectations(t)
	})

	t.Run("rejects missing coffee reference without catalog call", func(t *testing.T) {
		catalog := new(MockCoffeeCatalog)
		validator, _ := services.NewOrderItemValidator(catalog)

		_, err := validator.Validate(ctx, services.ItemRequest{Quantity: 1}, map[kernel.UUID]struct{}{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		catalog.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("rejects non-positive quantity without catalog call", func(t *testing.T) {
		catalog := new(MockCoffeeCatalog)
		validator, _ := services.NewOrderItemValidator(catalog)

		_, err := validator.Validate(ctx, services.ItemRequest{CoffeeID: coffeeID, Quantity: 0},
			map[kernel.UUID]struct{}{})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		catalog.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("propagates catalog not found", func(t *testing.T) {
		catalog := new(MockCoffeeCatalog)
		catalog.On("Get", ctx, coffeeID).
			Return(nil, errs.NewObjectNotFoundError("coffee", coffeeID.String())).Once()
		validator, _ := services.NewOrderItemValidator(catalog)
		seen := make(map[kernel.UUID]struct{})

		_, err := validator.Validate(ctx, services.ItemRequest{CoffeeID: coffeeID, Quantity: 1}, seen)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.NotContains(t, seen, coffeeID)
	})

	t.Run("rejects coffee already seen in this pass", func(t *testing.T) {
		catalog := new(MockCoffeeCatalog)
		catalog.On("Get", ctx, coffeeID).Return(catalogCoffee(t, coffeeID, "2.50"), nil).Once()
		validator, _ := services.NewOrderItemValidator(catalog)
		seen := map[kernel.UUID]struct{}{coffeeID: {}}

		_, err := validator.Validate(ctx, services.ItemRequest{CoffeeID: coffeeID, Quantity: 1}, seen)

		require.ErrorIs(t, err, order.ErrDuplicateCoffee)
	})
}

func TestOrderItemValidator_ValidateAll(t *testing.T) {
	ctx := t.Context()

	t.Run("validates whole list with one shared seen set", func(t *testing.T) {
		espressoID := kernel.NewUUID()
		latteID := kernel.NewUUID()
		catalog := new(MockCoffeeCatalog)
		catalog.On("Get", ctx, espressoID).Return(catalogCoffee(t, espressoID, "2.50"), nil).Once()
		catalog.On("Get", ctx, latteID).Return(catalogCoffee(t, latteID, "5.00"), nil).Once()
		validator, _ := services.NewOrderItemValidator(catalog)

		items, err := validator.ValidateAll(ctx, []services.ItemRequest{
			{CoffeeID: espressoID, Quantity: 2},
			{CoffeeID: latteID, Quantity: 1},
		})

		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.True(t, items[0].Subtotal().Add(items[1].Subtotal()).
			Equal(decimal.RequireFromString("10.00")))
		catalog.AssertExpectations(t)
	})

	t.Run("first occurrence wins, second duplicate aborts the pass", func(t *testing.T) {
		coffeeID := kernel.NewUUID()
		catalog := new(MockCoffeeCatalog)
		catalog.On("Get", ctx, coffeeID).Return(catalogCoffee(t, coffeeID, "2.50"), nil).Twice()
		validator, _ := services.NewOrderItemValidator(catalog)

		items, err := validator.ValidateAll(ctx, []services.ItemRequest{
			{CoffeeID: coffeeID, Quantity: 2},
			{CoffeeID: coffeeID, Quantity: 3},
		})

		require.ErrorIs(t, err, order.ErrDuplicateCoffee)
		assert.Nil(t, items)
	})

	t.Run("empty list is rejected", func(t *testing.T) {
		validator, _ := services.NewOrderItemValidator(new(MockCoffeeCatalog))

		_, err := validator.ValidateAll(ctx, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
