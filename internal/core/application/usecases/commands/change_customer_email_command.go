package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrChangeCustomerEmailCommandIsNotConstructed = errors.New(
	"ChangeCustomerEmailCommand must be created via NewChangeCustomerEmailCommand constructor",
)

// ChangeCustomerEmailCommand represents a partial update replacing only a
// customer's email address.
type ChangeCustomerEmailCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	email      string

	guard guard.ConstructorGuard
}

// NewChangeCustomerEmailCommand creates a command to replace a customer's email.
func NewChangeCustomerEmailCommand(customerID kernel.UUID, email string) (ChangeCustomerEmailCommand, error) {
	emailCommand := ChangeCustomerEmailCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		emailCommand.setCustomerID(customerID),
		emailCommand.setEmail(email),
	); err != nil {
		return ChangeCustomerEmailCommand{}, err
	}

	return emailCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeCustomerEmailCommandIsNotConstructed if validation fails.
func (c ChangeCustomerEmailCommand) Validate() error {
	return c.guard.Validate(ErrChangeCustomerEmailCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer being updated.
func (c ChangeCustomerEmailCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Email returns the new email address.
func (c ChangeCustomerEmailCommand) Email() string {
	return c.email
}

func (c *ChangeCustomerEmailCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *ChangeCustomerEmailCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
