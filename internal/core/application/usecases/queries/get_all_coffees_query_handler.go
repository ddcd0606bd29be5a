package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllCoffeesQueryHandler retrieves every catalog entry from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllCoffeesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllCoffeesQueryHandler creates a handler for catalog listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllCoffeesQueryHandler(db *gorm.DB) GetAllCoffeesQueryHandler {
	return GetAllCoffeesQueryHandler{db: db}
}

// Handle executes the query to retrieve all coffees, sorted by name.
func (h GetAllCoffeesQueryHandler) Handle(
	ctx context.Context,
	query GetAllCoffeesQuery,
) ([]CoffeeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanCoffees(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			image_url
		FROM coffees
		ORDER BY name
	`))
}
