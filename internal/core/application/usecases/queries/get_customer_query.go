package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery retrieves a single registry entry by id.
type GetCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query for one customer record.
func NewGetCustomerQuery(customerID kernel.UUID) (GetCustomerQuery, error) {
	customerQuery := GetCustomerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := customerQuery.setCustomerID(customerID); err != nil {
		return GetCustomerQuery{}, err
	}

	return customerQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerQueryIsNotConstructed if validation fails.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier of the requested customer.
func (q GetCustomerQuery) CustomerID() kernel.UUID {
	return q.customerID
}

func (q *GetCustomerQuery) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	q.customerID = customerID
	return nil
}
