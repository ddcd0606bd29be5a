package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrGetCoffeeQueryIsNotConstructed = errors.New(
	"GetCoffeeQuery must be created via NewGetCoffeeQuery constructor",
)

// GetCoffeeQuery retrieves a single catalog entry by id.
//
// Example:
//
//	query, err := NewGetCoffeeQuery(coffeeID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetCoffeeQueryHandler(db)
//	coffee, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get coffee: %w", err)
//	}
//	fmt.Printf("%s costs %s\n", coffee.Name, coffee.Price)
type GetCoffeeQuery struct { //nolint:recvcheck //using for validation
	coffeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCoffeeQuery creates a query for one catalog entry.
func NewGetCoffeeQuery(coffeeID kernel.UUID) (GetCoffeeQuery, error) {
	coffeeQuery := GetCoffeeQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := coffeeQuery.setCoffeeID(coffeeID); err != nil {
		return GetCoffeeQuery{}, err
	}

	return coffeeQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCoffeeQueryIsNotConstructed if validation fails.
func (q GetCoffeeQuery) Validate() error {
	return q.guard.Validate(ErrGetCoffeeQueryIsNotConstructed)
}

// CoffeeID returns the identifier of the requested coffee.
func (q GetCoffeeQuery) CoffeeID() kernel.UUID {
	return q.coffeeID
}

func (q *GetCoffeeQuery) setCoffeeID(coffeeID kernel.UUID) error {
	if err := coffeeID.Validate(); err != nil {
		return err
	}

	q.coffeeID = coffeeID
	return nil
}
