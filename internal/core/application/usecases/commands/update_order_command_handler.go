package commands

import (
	"context"

	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/pkg/errs"
)

// UpdateOrderCommandHandler handles full rewrites of an order's contents.
// The stored order must still be pending; items are re-resolved against the
// catalog so the replacement lines carry current prices.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order content updates.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order update command.
// Loads the order, rejects content edits outside pending status before any
// catalog work, re-resolves the customer and items, then persists the
// rewritten aggregate.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ValidateCanEditContent(); err != nil {
		return err
	}

	exists, err := uow.CustomerRepository().ExistsByID(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("customerId", cmd.CustomerID())
	}

	validator, err := services.NewOrderItemValidator(uow.CoffeeRepository())
	if err != nil {
		return err
	}

	items, err := validator.ValidateAll(ctx, cmd.Items())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeCustomer(cmd.CustomerID()); err != nil {
		return err
	}

	if err = aggregate.ReplaceItems(items); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
