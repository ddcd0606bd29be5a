package order

import (
	"errors"
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a coffee reference, a quantity, and the
// subtotal computed from the coffee's price at validation time.
//
// Item is an immutable value object exclusively owned by its Order. It holds
// no live reference to the coffee or back to the order — only the coffee id.
// The subtotal is a snapshot: catalog price changes after the order was
// validated do not affect it.
type Item struct {
	coffeeID kernel.UUID
	quantity int
	subtotal decimal.Decimal

	isConstructed bool
}

// NewItem creates a validated line item, computing subtotal = price × quantity.
//
// The price is the coffee's current catalog price, supplied by the caller
// (the item validator) after resolving the coffee. It must be positive, which
// the catalog guarantees for every stored coffee.
func NewItem(coffeeID kernel.UUID, price decimal.Decimal, quantity int) (Item, error) {
	if err := coffeeID.Validate(); err != nil {
		return Item{}, errs.NewValueIsRequiredErrorWithCause("coffeeId", err)
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !price.IsPositive() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", price))
	}

	return Item{
		coffeeID:      coffeeID,
		quantity:      quantity,
		subtotal:      price.Mul(decimal.NewFromInt(int64(quantity))),
		isConstructed: true,
	}, nil
}

// RestoreItem reconstructs a line item from persistence with its stored
// subtotal snapshot. Unlike NewItem it does not recompute the subtotal, so
// historical orders keep the price they were validated against.
func RestoreItem(coffeeID kernel.UUID, quantity int, subtotal decimal.Decimal) (Item, error) {
	if err := coffeeID.Validate(); err != nil {
		return Item{}, errs.NewValueIsRequiredErrorWithCause("coffeeId", err)
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if !subtotal.IsPositive() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("subtotal",
			fmt.Errorf("%s is not greater than 0", subtotal))
	}

	return Item{
		coffeeID:      coffeeID,
		quantity:      quantity,
		subtotal:      subtotal,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was properly constructed.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// CoffeeID returns the referenced coffee's identifier.
func (i Item) CoffeeID() kernel.UUID {
	return i.coffeeID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns the price snapshot times the quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.subtotal
}
