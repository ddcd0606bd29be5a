package ports

import (
	"context"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its line items form one consistency boundary: every method
// reads or writes the full aggregate, and Delete cascades to the items.
type OrderRepository interface {
	// Add persists a new order aggregate together with all its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order, replacing its stored
	// item collection with the aggregate's current one.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items by id. Returns an error
	// unwrapping to errs.ErrObjectNotFound when absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllPendingBefore retrieves orders still Pending whose order date is
	// strictly before the cutoff. Used by the stale-order cancellation job.
	GetAllPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// Delete removes an order and cascades removal of its items.
	// Returns errs.ErrObjectNotFound when absent.
	Delete(ctx context.Context, id kernel.UUID) error
}
