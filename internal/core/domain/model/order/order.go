package order

import (
	"errors"
	"fmt"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDuplicateCoffee is returned when two line items of one order reference
	// the same coffee. Duplicates are rejected outright, never merged or summed.
	ErrDuplicateCoffee = errors.New("order already contains this coffee")

	// ErrOrderIsNotEditable is returned when an order's content (items,
	// customer) is edited outside the Pending status.
	ErrOrderIsNotEditable = errors.New("order content can only be edited while pending")
)

// Order is the aggregate root for a café order. It owns its line items
// exclusively, references its customer by id, and is treated as one
// consistency boundary.
//
// Order maintains these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Must contain at least one line item
//   - No two line items reference the same coffee
//   - The order date is set at creation and never changes
//   - Content edits are only possible while the order is Pending
//   - Total always equals the sum of the current items' subtotals
//
// The total is derived rather than stored in the aggregate: Total recomputes
// it from the items, so it can never drift after a replacement.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	dateOrder  time.Time
	status     Status
	items      []Item

	isConstructed bool
}

// NewOrder creates a new order in Pending status with the given validated
// items and order date.
//
// The items must already have passed catalog validation (the item validator
// resolves coffees and snapshots prices); NewOrder still enforces the
// aggregate-level invariants — at least one item, no duplicate coffees.
func NewOrder(id, customerID kernel.UUID, items []Item, dateOrder time.Time) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setDateOrder(dateOrder),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status.
// The aggregate invariants are re-checked; a persisted order violating them
// indicates corrupted data.
func RestoreOrder(id, customerID kernel.UUID, items []Item, dateOrder time.Time, status Status) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setDateOrder(dateOrder),
		order.setItems(items),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DateOrder returns the creation timestamp. It is set once and never changes.
func (o *Order) DateOrder() time.Time {
	return o.dateOrder
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's line items. Mutating the returned slice
// does not affect the aggregate.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Total returns the sum of the line items' subtotals. Recomputed on every
// call so it always reflects the current item collection.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ValidateCanEditContent reports whether the order currently accepts content
// edits. Used by the lifecycle service to fail fast before re-validating a
// full update request.
func (o *Order) ValidateCanEditContent() error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.status.ValidateCanEditContent()
}

// ReplaceItems atomically swaps the entire item collection. There is no
// partial-item patch: callers always supply the full new set, already
// validated against the catalog.
//
// Fails with ErrOrderIsNotEditable unless the order is Pending, and enforces
// the same invariants as creation (non-empty, no duplicate coffees). On
// failure the existing items are left untouched.
func (o *Order) ReplaceItems(items []Item) error {
	if err := o.ValidateCanEditContent(); err != nil {
		return err
	}
	return o.setItems(items)
}

// ChangeCustomer re-points the order at another existing customer.
// Subject to the same Pending-only rule as item replacement.
func (o *Order) ChangeCustomer(customerID kernel.UUID) error {
	if err := o.ValidateCanEditContent(); err != nil {
		return err
	}
	return o.setCustomerID(customerID)
}

// ChangeStatus moves the order to the target status.
//
// The transition policy is permissive (see Status.Transition): any valid
// target is accepted from any state, and re-setting the current status is an
// idempotent no-op. Only an invalid target fails.
func (o *Order) ChangeStatus(target Status) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Transition(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setDateOrder(dateOrder time.Time) error {
	if dateOrder.IsZero() {
		return errs.NewValueIsRequiredError("dateOrder")
	}
	o.dateOrder = dateOrder
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.CoffeeID()]; ok {
			return fmt.Errorf("%w: coffee %s", ErrDuplicateCoffee, item.CoffeeID())
		}
		seen[item.CoffeeID()] = struct{}{}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
