package commands

import (
	"context"
	"errors"

	"coffeeshop/internal/core/domain/model/coffee"
	"coffeeshop/internal/pkg/errs"
)

// CreateCoffeeCommandHandler adds coffees to the catalog.
// Enforces name uniqueness with an in-transaction lookup; the database
// unique index backs it up against concurrent writers.
type CreateCoffeeCommandHandler struct {
	uowFactory CoffeeUoWFactory
}

// NewCreateCoffeeCommandHandler creates a handler for catalog additions.
func NewCreateCoffeeCommandHandler(uowFactory CoffeeUoWFactory) CreateCoffeeCommandHandler {
	return CreateCoffeeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the coffee creation command.
func (h *CreateCoffeeCommandHandler) Handle(ctx context.Context, cmd CreateCoffeeCommand) error {
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

	_, err := repo.GetByName(ctx, cmd.Name())
	if err == nil {
		return errs.NewObjectAlreadyExistsError("name", cmd.Name())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := coffee.NewCoffee(cmd.CoffeeID(), cmd.Name(), cmd.Price(), cmd.ImageURL())
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
