package commands

import (
	"context"
	"errors"

	"coffeeshop/internal/core/domain/model/customer"
	"coffeeshop/internal/pkg/errs"
)

// CreateCustomerCommandHandler registers customers.
// Enforces email uniqueness with an in-transaction lookup; the database
// unique index backs it up against concurrent writers.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer registration command.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerRepository()

	_, err := repo.GetByEmail(ctx, cmd.Email())
	if err == nil {
		return errs.NewObjectAlreadyExistsError("email", cmd.Email())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := customer.NewCustomer(cmd.CustomerID(), cmd.Name(), cmd.Email(), cmd.Phone())
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
