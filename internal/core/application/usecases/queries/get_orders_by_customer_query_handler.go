package queries

import (
	"context"

	"gorm.io/gorm"

	"coffeeshop/internal/pkg/errs"
)

// GetOrdersByCustomerQueryHandler retrieves one customer's orders.
// Checks the customer exists first, so an unknown customer reads as not
// found rather than as an empty order list.
type GetOrdersByCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByCustomerQueryHandler creates a handler for customer-filtered queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByCustomerQueryHandler(db *gorm.DB) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{db: db}
}

// Handle executes the query. Returns an error unwrapping to
// errs.ErrObjectNotFound when the customer does not exist.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var count int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM customers WHERE id = ?`, query.CustomerID().Bytes()).
		Scan(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("customerId", query.CustomerID())
	}

	return queryOrders(ctx, h.db, `WHERE o.customer_id = ?`, query.CustomerID().Bytes())
}
