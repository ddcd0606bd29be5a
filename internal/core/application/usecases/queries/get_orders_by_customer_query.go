package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
)

// GetOrdersByCustomerQuery retrieves all orders placed by one customer.
// An unknown customer is an error; a known customer with no orders is an
// empty list.
type GetOrdersByCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query filtering orders by customer.
func NewGetOrdersByCustomerQuery(customerID kernel.UUID) (GetOrdersByCustomerQuery, error) {
	customerQuery := GetOrdersByCustomerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerQuery.setCustomerID(customerID); err != nil {
		return GetOrdersByCustomerQuery{}, err
	}

	return customerQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByCustomerQueryIsNotConstructed if validation fails.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetOrdersByCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetOrdersByCustomerQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}
