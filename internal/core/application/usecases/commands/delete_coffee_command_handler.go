package commands

import (
	"context"
)

// DeleteCoffeeCommandHandler removes catalog entries. Order items that
// already reference the coffee keep their snapshotted price and subtotal.
type DeleteCoffeeCommandHandler struct {
	uowFactory CoffeeUoWFactory
}

// NewDeleteCoffeeCommandHandler creates a handler for catalog deletions.
func NewDeleteCoffeeCommandHandler(uowFactory CoffeeUoWFactory) DeleteCoffeeCommandHandler {
	return DeleteCoffeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the coffee deletion command.
func (h *DeleteCoffeeCommandHandler) Handle(ctx context.Context, cmd DeleteCoffeeCommand) error {
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

	if err := uow.CoffeeRepository().Delete(ctx, cmd.CoffeeID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
