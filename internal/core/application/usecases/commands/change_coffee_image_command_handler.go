package commands

import (
	"context"
)

// ChangeCoffeeImageCommandHandler replaces a coffee's image URL in place.
type ChangeCoffeeImageCommandHandler struct {
	uowFactory CoffeeUoWFactory
}

// NewChangeCoffeeImageCommandHandler creates a handler for image changes.
func NewChangeCoffeeImageCommandHandler(uowFactory CoffeeUoWFactory) ChangeCoffeeImageCommandHandler {
	return ChangeCoffeeImageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the image change command.
func (h *ChangeCoffeeImageCommandHandler) Handle(ctx context.Context, cmd ChangeCoffeeImageCommand) error {
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

	if err = aggregate.ChangeImageURL(cmd.ImageURL()); err != nil {
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
