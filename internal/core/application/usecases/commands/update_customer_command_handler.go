package commands

import (
	"context"
	"errors"

	"coffeeshop/internal/pkg/errs"
)

// UpdateCustomerCommandHandler rewrites customer records.
// An email change re-checks uniqueness against the rest of the registry.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the customer update command.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	aggregate, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if aggregate.Email() != cmd.Email() {
		_, err = repo.GetByEmail(ctx, cmd.Email())
		if err == nil {
			return errs.NewObjectAlreadyExistsError("email", cmd.Email())
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	if err = aggregate.Update(cmd.Name(), cmd.Email(), cmd.Phone()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
