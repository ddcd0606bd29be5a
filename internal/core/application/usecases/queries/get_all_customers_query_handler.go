package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllCustomersQueryHandler retrieves every registry entry from the database.
type GetAllCustomersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCustomersQueryHandler creates a handler for registry listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllCustomersQueryHandler(db *gorm.DB) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{db: db}
}

// Handle executes the query to retrieve all customers, sorted by name.
func (h GetAllCustomersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCustomersQuery,
) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanCustomers(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone
		FROM customers
		ORDER BY name
	`))
}
