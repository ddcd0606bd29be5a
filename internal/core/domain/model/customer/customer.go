package customer

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a registry entity representing someone who can place orders.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name must be non-empty
//   - Email must be non-empty (uniqueness across the registry is enforced by
//     the repository layer)
//   - Phone is optional and unvalidated
//
// Orders reference customers by id only; the customer must pre-exist when an
// order is created or updated.
type Customer struct {
	id    kernel.UUID
	name  string
	email string
	phone string

	isConstructed bool
}

// NewCustomer creates a validated Customer entity.
func NewCustomer(id kernel.UUID, name, email, phone string) (*Customer, error) {
	customer := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
	); err != nil {
		return nil, err
	}

	customer.phone = phone
	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persistence.
func RestoreCustomer(id kernel.UUID, name, email, phone string) (*Customer, error) {
	return NewCustomer(id, name, email, phone)
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's phone number, possibly empty.
func (c *Customer) Phone() string {
	return c.phone
}

// Update replaces name, email and phone in one validated step.
func (c *Customer) Update(name, email, phone string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	updated := *c
	if err := errors.Join(
		updated.setName(name),
		updated.setEmail(email),
	); err != nil {
		return err
	}
	updated.phone = phone

	*c = updated
	return nil
}

// ChangeEmail replaces only the email address.
func (c *Customer) ChangeEmail(email string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return c.setEmail(email)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
