package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery retrieves all orders in one lifecycle status.
// The status arrives as its wire name and is parsed during construction,
// so an unknown name fails before the database is touched.
type GetOrdersByStatusQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query filtering orders by status.
func NewGetOrdersByStatusQuery(status string) (GetOrdersByStatusQuery, error) {
	statusQuery := GetOrdersByStatusQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := statusQuery.setStatus(status); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return statusQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersByStatusQueryIsNotConstructed if validation fails.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the parsed status filter.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

func (q *GetOrdersByStatusQuery) setStatus(status string) error {
	parsed, err := order.StatusFromString(status)
	if err != nil {
		return err
	}

	q.status = parsed
	return nil
}
