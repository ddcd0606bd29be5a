package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace the contents of an
// existing order: its customer reference and its full item list. Only
// pending orders accept content changes; the handler enforces that.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	items      []services.ItemRequest

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to rewrite an order's contents.
// Validates that both ids are valid and at least one item is requested.
func NewUpdateOrderCommand(
	orderID, customerID kernel.UUID,
	items []services.ItemRequest,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderCommandIsNotConstructed if validation fails.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer the order should belong to after the update.
func (c UpdateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested replacement order lines.
func (c UpdateOrderCommand) Items() []services.ItemRequest {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateOrderCommand) setItems(items []services.ItemRequest) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = make([]services.ItemRequest, len(items))
	copy(c.items, items)
	return nil
}
