package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrCreateCoffeeCommandIsNotConstructed = errors.New(
	"CreateCoffeeCommand must be created via NewCreateCoffeeCommand constructor",
)

// CreateCoffeeCommand represents a request to add a coffee to the catalog.
// Names are unique across the catalog; the handler checks that inside the
// transaction.
//
// Example:
//
//	coffeeID := kernel.NewUUID()
//	cmd, err := NewCreateCoffeeCommand(coffeeID, "Espresso", decimal.NewFromFloat(2.50), "https://img/espresso.png")
//	if err != nil {
//	    return fmt.Errorf("invalid coffee data: %w", err)
//	}
//
//	handler := NewCreateCoffeeCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add coffee: %w", err)
//	}
type CreateCoffeeCommand struct { //nolint:recvcheck //using for validation
	coffeeID kernel.UUID
	name     string
	price    decimal.Decimal
	imageURL string

	guard guard.ConstructorGuard
}

// NewCreateCoffeeCommand creates a command to add a catalog entry.
// Validates that the id is valid, name and image URL are not empty,
// and the price is positive.
func NewCreateCoffeeCommand(
	coffeeID kernel.UUID,
	name string,
	price decimal.Decimal,
	imageURL string,
) (CreateCoffeeCommand, error) {
	coffeeCommand := CreateCoffeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		coffeeCommand.setCoffeeID(coffeeID),
		coffeeCommand.setName(name),
		coffeeCommand.setPrice(price),
		coffeeCommand.setImageURL(imageURL),
	); err != nil {
		return CreateCoffeeCommand{}, err
	}

	return coffeeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateCoffeeCommandIsNotConstructed if validation fails.
func (c CreateCoffeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateCoffeeCommandIsNotConstructed)
}

// CoffeeID returns the unique identifier for the new coffee.
func (c CreateCoffeeCommand) CoffeeID() kernel.UUID {
	return c.coffeeID
}

// Name returns the coffee's display name.
func (c CreateCoffeeCommand) Name() string {
	return c.name
}

// Price returns the coffee's unit price.
func (c CreateCoffeeCommand) Price() decimal.Decimal {
	return c.price
}

// ImageURL returns the coffee's image location.
func (c CreateCoffeeCommand) ImageURL() string {
	return c.imageURL
}

func (c *CreateCoffeeCommand) setCoffeeID(coffeeID kernel.UUID) error {
	if err := coffeeID.Validate(); err != nil {
		return err
	}

	c.coffeeID = coffeeID
	return nil
}

func (c *CreateCoffeeCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateCoffeeCommand) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			errors.New(price.String()+" is not greater than 0"))
	}

	c.price = price
	return nil
}

func (c *CreateCoffeeCommand) setImageURL(imageURL string) error {
	if imageURL == "" {
		return errs.NewValueIsRequiredError("imageUrl")
	}

	c.imageURL = imageURL
	return nil
}
