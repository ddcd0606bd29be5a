package queries

import (
	"context"

	"gorm.io/gorm"

	"coffeeshop/internal/pkg/errs"
)

// GetCustomerQueryHandler retrieves one registry entry from the database.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates a handler for single-customer queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

// Handle executes the query. Returns an error unwrapping to
// errs.ErrObjectNotFound when the customer does not exist.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	customers, err := scanCustomers(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Bytes()))
	if err != nil {
		return CustomerResponse{}, err
	}

	if len(customers) == 0 {
		return CustomerResponse{}, errs.NewObjectNotFoundError("customerId", query.CustomerID())
	}

	return customers[0], nil
}
