package queries

import (
	"errors"

	"coffeeshop/internal/pkg/guard"
)

var ErrGetAllCoffeesQueryIsNotConstructed = errors.New(
	"GetAllCoffeesQuery must be created via NewGetAllCoffeesQuery constructor",
)

// GetAllCoffeesQuery retrieves the whole catalog, sorted by name.
type GetAllCoffeesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCoffeesQuery creates a query for the full catalog.
// This is a parameterless query.
func NewGetAllCoffeesQuery() GetAllCoffeesQuery {
	return GetAllCoffeesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllCoffeesQueryIsNotConstructed if validation fails.
func (q GetAllCoffeesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCoffeesQueryIsNotConstructed)
}
