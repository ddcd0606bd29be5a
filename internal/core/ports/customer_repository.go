package ports

import (
	"context"

	"coffeeshop/internal/core/domain/model/customer"
	"coffeeshop/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for the customer registry.
type CustomerRepository interface {
	// Add persists a new customer. The email must not collide with an existing one.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by id. Returns an error unwrapping to
	// errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer by their unique email. Returns an error
	// unwrapping to errs.ErrObjectNotFound when absent. Used for uniqueness
	// checks on create and email change.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)

	// ExistsByID reports whether the customer exists. Order validation uses
	// this to resolve customer references without loading the record.
	ExistsByID(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes a customer from the registry.
	// Returns errs.ErrObjectNotFound when absent.
	Delete(ctx context.Context, id kernel.UUID) error
}
