package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrChangeCoffeeImageCommandIsNotConstructed = errors.New(
	"ChangeCoffeeImageCommand must be created via NewChangeCoffeeImageCommand constructor",
)

// ChangeCoffeeImageCommand represents a partial update replacing only a
// coffee's image URL.
type ChangeCoffeeImageCommand struct { //nolint:recvcheck //using for validation
	coffeeID kernel.UUID
	imageURL string

	guard guard.ConstructorGuard
}

// NewChangeCoffeeImageCommand creates a command to replace a coffee's image.
func NewChangeCoffeeImageCommand(coffeeID kernel.UUID, imageURL string) (ChangeCoffeeImageCommand, error) {
	imageCommand := ChangeCoffeeImageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		imageCommand.setCoffeeID(coffeeID),
		imageCommand.setImageURL(imageURL),
	); err != nil {
		return ChangeCoffeeImageCommand{}, err
	}

	return imageCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeCoffeeImageCommandIsNotConstructed if validation fails.
func (c ChangeCoffeeImageCommand) Validate() error {
	return c.guard.Validate(ErrChangeCoffeeImageCommandIsNotConstructed)
}

// CoffeeID returns the identifier of the coffee being updated.
func (c ChangeCoffeeImageCommand) CoffeeID() kernel.UUID {
	return c.coffeeID
}

// ImageURL returns the new image location.
func (c ChangeCoffeeImageCommand) ImageURL() string {
	return c.imageURL
}

func (c *ChangeCoffeeImageCommand) setCoffeeID(coffeeID kernel.UUID) error {
	if err := coffeeID.Validate(); err != nil {
		return err
	}

	c.coffeeID = coffeeID
	return nil
}

func (c *ChangeCoffeeImageCommand) setImageURL(imageURL string) error {
	if imageURL == "" {
		return errs.NewValueIsRequiredError("imageUrl")
	}

	c.imageURL = imageURL
	return nil
}
