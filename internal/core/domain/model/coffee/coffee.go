package coffee

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrCoffeeIsNotConstructed is returned when a Coffee instance was not created
// through NewCoffee or RestoreCoffee.
var ErrCoffeeIsNotConstructed = errors.New("Coffee must be created via NewCoffee constructor")

// Coffee is a catalog entity describing one product the café sells.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must be non-empty (uniqueness across the catalog is enforced by
//     the registry, not by this entity)
//   - Price must be strictly positive
//   - Image URL must be non-empty
//
// Orders reference coffees by id only and snapshot the price at validation
// time, so later catalog updates never rewrite existing order lines.
type Coffee struct {
	id       kernel.UUID
	name     string
	price    decimal.Decimal
	imageURL string

	isConstructed bool
}

// NewCoffee creates a validated Coffee entity.
func NewCoffee(id kernel.UUID, name string, price decimal.Decimal, imageURL string) (*Coffee, error) {
	coffee := &Coffee{
		isConstructed: true,
	}

	if err := errors.Join(
		coffee.setID(id),
		coffee.setName(name),
		coffee.setPrice(price),
		coffee.setImageURL(imageURL),
	); err != nil {
		return nil, err
	}

	return coffee, nil
}

// RestoreCoffee reconstructs a Coffee from persistence. The same invariants
// apply as in NewCoffee; a row that fails them indicates corrupted data.
func RestoreCoffee(id kernel.UUID, name string, price decimal.Decimal, imageURL string) (*Coffee, error) {
	return NewCoffee(id, name, price, imageURL)
}

// Validate ensures the Coffee instance was properly constructed.
func (c *Coffee) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCoffeeIsNotConstructed
	}
	return nil
}

// ID returns the coffee's unique identifier.
func (c *Coffee) ID() kernel.UUID {
	return c.id
}

// Name returns the coffee's display name.
func (c *Coffee) Name() string {
	return c.name
}

// Price returns the current catalog price.
func (c *Coffee) Price() decimal.Decimal {
	return c.price
}

// ImageURL returns the product image URL.
func (c *Coffee) ImageURL() string {
	return c.imageURL
}

// Update replaces name, price and image URL in one validated step.
// Used by the full-update catalog operation.
func (c *Coffee) Update(name string, price decimal.Decimal, imageURL string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	updated := *c
	if err := errors.Join(
		updated.setName(name),
		updated.setPrice(price),
		updated.setImageURL(imageURL),
	); err != nil {
		return err
	}

	*c = updated
	return nil
}

// ChangeImageURL replaces only the image URL.
func (c *Coffee) ChangeImageURL(imageURL string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.setImageURL(imageURL)
}

func (c *Coffee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Coffee) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Coffee) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			errors.New(price.String()+" is not greater than 0"))
	}
	c.price = price
	return nil
}

func (c *Coffee) setImageURL(imageURL string) error {
	if imageURL == "" {
		return errs.NewValueIsRequiredError("imageUrl")
	}
	c.imageURL = imageURL
	return nil
}
