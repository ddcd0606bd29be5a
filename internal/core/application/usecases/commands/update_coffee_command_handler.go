package commands

import (
	"context"
	"errors"

	"coffeeshop/internal/pkg/errs"
)

// UpdateCoffeeCommandHandler rewrites catalog entries.
// A rename re-checks name uniqueness against the rest of the catalog.
// Existing order items keep their snapshotted prices; only future orders
// see the new price.
type UpdateCoffeeCommandHandler struct {
	uowFactory CoffeeUoWFactory
}

// NewUpdateCoffeeCommandHandler creates a handler for catalog updates.
func NewUpdateCoffeeCommandHandler(uowFactory CoffeeUoWFactory) UpdateCoffeeCommandHandler {
	return UpdateCoffeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the coffee update command.
func (h *UpdateCoffeeCommandHandler) Handle(ctx context.Context, cmd UpdateCoffeeCommand) error {
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

	repo := uow.CoffeeRepository()

	aggregate, err := repo.Get(ctx, cmd.CoffeeID())
	if err != nil {
		return err
	}

	if aggregate.Name() != cmd.Name() {
		_, err = repo.GetByName(ctx, cmd.Name())
		if err == nil {
			return errs.NewObjectAlreadyExistsError("name", cmd.Name())
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return err
		}
	}

	if err = aggregate.Update(cmd.Name(), cmd.Price(), cmd.ImageURL()); err != nil {
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
