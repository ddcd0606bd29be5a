package queries

import (
	"context"

	"gorm.io/gorm"

	"coffeeshop/internal/pkg/errs"
)

// GetCoffeeQueryHandler retrieves one catalog entry from the database.
type GetCoffeeQueryHandler struct {
	db *gorm.DB
}

// NewGetCoffeeQueryHandler creates a handler for single-coffee queries.
// Requires a GORM database connection for query execution.
func NewGetCoffeeQueryHandler(db *gorm.DB) GetCoffeeQueryHandler {
	return GetCoffeeQueryHandler{db: db}
}

// Handle executes the query. Returns an error unwrapping to
// errs.ErrObjectNotFound when the coffee does not exist.
func (h GetCoffeeQueryHandler) Handle(ctx context.Context, query GetCoffeeQuery) (CoffeeResponse, error) {
	if err := query.Validate(); err != nil {
		return CoffeeResponse{}, err
	}

	coffees, err := scanCoffees(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			image_url
		FROM coffees
		WHERE id = ?
	`, query.CoffeeID().Bytes()))
	if err != nil {
		return CoffeeResponse{}, err
	}

	if len(coffees) == 0 {
		return CoffeeResponse{}, errs.NewObjectNotFoundError("coffeeId", query.CoffeeID())
	}

	return coffees[0], nil
}
