package commands

import (
	"context"
	"errors"

	"coffeeshop/internal/pkg/errs"
)

// ChangeCustomerEmailCommandHandler replaces a customer's email in place,
// re-checking registry uniqueness first.
type ChangeCustomerEmailCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewChangeCustomerEmailCommandHandler creates a handler for email changes.
func NewChangeCustomerEmailCommandHandler(uowFactory CustomerUoWFactory) ChangeCustomerEmailCommandHandler {
	return ChangeCustomerEmailCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the email change command.
func (h *ChangeCustomerEmailCommandHandler) Handle(ctx context.Context, cmd ChangeCustomerEmailCommand) error {
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

	if err = aggregate.ChangeEmail(cmd.Email()); err != nil {
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
