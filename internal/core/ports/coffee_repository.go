package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/coffee"
	"coffeeshop/internal/core/domain/model/kernel"
)

// CoffeeRepository defines the persistence contract for the coffee catalog.
// Listing and pagination are read concerns served by the queries layer; the
// repository carries what the write path needs.
type CoffeeRepository interface {
	// Add persists a new coffee. The name must not collide with an existing one.
	Add(ctx context.Context, aggregate *coffee.Coffee) error

	// Update persists changes to an existing coffee.
	Update(ctx context.Context, aggregate *coffee.Coffee) error

	// Get retrieves a coffee by id. Returns an error unwrapping to
	// errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*coffee.Coffee, error)

	// GetByName retrieves a coffee by its unique name. Returns an error
	// unwrapping to errs.ErrObjectNotFound when absent. Used for
	// uniqueness checks on create and rename.
	GetByName(ctx context.Context, name string) (*coffee.Coffee, error)

	// Delete removes a coffee from the catalog.
	// Returns errs.ErrObjectNotFound when absent.
	Delete(ctx context.Context, id kernel.UUID) error
}
