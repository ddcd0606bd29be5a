package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrUpdateCoffeeCommandIsNotConstructed = errors.New(
	"UpdateCoffeeCommand must be created via NewUpdateCoffeeCommand constructor",
)

// UpdateCoffeeCommand represents a full rewrite of a catalog entry:
// name, price and image URL together.
type UpdateCoffeeCommand struct { //nolint:recvcheck //using for validation
	coffeeID kernel.UUID
	name     string
	price    decimal.Decimal
	imageURL string

	guard guard.ConstructorGuard
}

// NewUpdateCoffeeCommand creates a command to rewrite a catalog entry.
func NewUpdateCoffeeCommand(
	coffeeID kernel.UUID,
	name string,
	price decimal.Decimal,
	imageURL string,
) (UpdateCoffeeCommand, error) {
	coffeeCommand := UpdateCoffeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		coffeeCommand.setCoffeeID(coffeeID),
		coffeeCommand.setName(name),
		coffeeCommand.setPrice(price),
		coffeeCommand.setImageURL(imageURL),
	); err != nil {
		return UpdateCoffeeCommand{}, err
	}

	return coffeeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateCoffeeCommandIsNotConstructed if validation fails.
func (c UpdateCoffeeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCoffeeCommandIsNotConstructed)
}

// CoffeeID returns the identifier of the coffee being updated.
func (c UpdateCoffeeCommand) CoffeeID() kernel.UUID {
	return c.coffeeID
}

// Name returns the new display name.
func (c UpdateCoffeeCommand) Name() string {
	return c.name
}

// Price returns the new unit price.
func (c UpdateCoffeeCommand) Price() decimal.Decimal {
	return c.price
}

// ImageURL returns the new image location.
func (c UpdateCoffeeCommand) ImageURL() string {
	return c.imageURL
}

func (c *UpdateCoffeeCommand) setCoffeeID(coffeeID kernel.UUID) error {
	if err := coffeeID.Validate(); err != nil {
		return err
	}

	c.coffeeID = coffeeID
	return nil
}

func (c *UpdateCoffeeCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateCoffeeCommand) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			errors.New(price.String()+" is not greater than 0"))
	}

	c.price = price
	return nil
}

func (c *UpdateCoffeeCommand) setImageURL(imageURL string) error {
	if imageURL == "" {
		return errs.NewValueIsRequiredError("imageUrl")
	}

	c.imageURL = imageURL
	return nil
}
