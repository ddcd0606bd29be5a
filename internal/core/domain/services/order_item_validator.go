package services

import (
	"context"
	"errors"
	"fmt"

	"coffeeshop/internal/core/domain/model/coffee"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/pkg/errs"
)

// ErrCatalogIsRequired is returned when an OrderItemValidator is built
// without a catalog lookup.
var ErrCatalogIsRequired = errors.New("coffee catalog is required")

// CoffeeCatalog resolves coffee references for item validation.
// Implementations must return an error unwrapping to errs.ErrObjectNotFound
// when the id does not exist.
type CoffeeCatalog interface {
	Get(ctx context.Context, id kernel.UUID) (*coffee.Coffee, error)
}

// ItemRequest is one requested order line as it arrives from a caller:
// a coffee reference and a quantity, nothing resolved yet.
type ItemRequest struct {
	CoffeeID kernel.UUID
	Quantity int
}

// OrderItemValidator is a domain service that turns requested order lines
// into validated line items.
//
// For each request it:
//   - rejects a missing coffee reference or non-positive quantity
//   - resolves the coffee through the catalog (not-found propagates)
//   - rejects a coffee already seen in the same validation pass
//   - snapshots the coffee's current price into the resulting item
//
// Duplicate detection is threaded through an explicit seen-set accumulator so
// one set covers a whole item list in a single pass; the validator adds each
// accepted coffee id to the set itself. First occurrence in input order wins,
// later occurrences of the same coffee are rejected outright rather than
// merged or summed.
type OrderItemValidator struct {
	catalog CoffeeCatalog
}

// NewOrderItemValidator creates a validator backed by the given catalog lookup.
func NewOrderItemValidator(catalog CoffeeCatalog) (OrderItemValidator, error) {
	if catalog == nil {
		return OrderItemValidator{}, ErrCatalogIsRequired
	}
	return OrderItemValidator{catalog: catalog}, nil
}

// Validate checks a single requested line against the catalog and the
// seen-set, and returns the validated item with its price snapshot.
// On success the requested coffee id is added to seen.
func (v OrderItemValidator) Validate(
	ctx context.Context,
	request ItemRequest,
	seen map[kernel.UUID]struct{},
) (order.Item, error) {
	if err := request.CoffeeID.Validate(); err != nil {
		return order.Item{}, errs.NewValueIsRequiredErrorWithCause("coffeeId", err)
	}
	if request.Quantity <= 0 {
		return order.Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", request.Quantity))
	}

	resolved, err := v.catalog.Get(ctx, request.CoffeeID)
	if err != nil {
		return order.Item{}, err
	}

	if _, ok := seen[request.CoffeeID]; ok {
		return order.Item{}, fmt.Errorf("%w: coffee %s", order.ErrDuplicateCoffee, request.CoffeeID)
	}

	item, err := order.NewItem(request.CoffeeID, resolved.Price(), request.Quantity)
	if err != nil {
		return order.Item{}, err
	}

	seen[request.CoffeeID] = struct{}{}
	return item, nil
}

// ValidateAll folds Validate over a whole request list with one shared
// seen-set, so duplicate detection spans the entire order. The first error
// aborts the pass; either every request validates or no items are returned.
func (v OrderItemValidator) ValidateAll(ctx context.Context, requests []ItemRequest) ([]order.Item, error) {
	if len(requests) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	seen := make(map[kernel.UUID]struct{}, len(requests))
	items := make([]order.Item, 0, len(requests))
	for _, request := range requests {
		item, err := v.Validate(ctx, request, seen)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
