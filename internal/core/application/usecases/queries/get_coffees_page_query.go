package queries

import (
	"errors"
	"fmt"

	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrGetCoffeesPageQueryIsNotConstructed = errors.New(
	"GetCoffeesPageQuery must be created via NewGetCoffeesPageQuery constructor",
)

const maxPageSize = 100

// GetCoffeesPageQuery retrieves one page of the catalog. Pages are zero-based
// and sorted by name, so a page is stable as long as the catalog is.
type GetCoffeesPageQuery struct { //nolint:recvcheck //using for validation
	page int
	size int

	guard guard.ConstructorGuard
}

// NewGetCoffeesPageQuery creates a paged catalog query.
// The page number is zero-based; size must be between 1 and 100.
func NewGetCoffeesPageQuery(page, size int) (GetCoffeesPageQuery, error) {
	pageQuery := GetCoffeesPageQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pageQuery.setPage(page),
		pageQuery.setSize(size),
	); err != nil {
		return GetCoffeesPageQuery{}, err
	}

	return pageQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCoffeesPageQueryIsNotConstructed if validation fails.
func (q GetCoffeesPageQuery) Validate() error {
	return q.guard.Validate(ErrGetCoffeesPageQueryIsNotConstructed)
}

// Page returns the zero-based page number.
func (q GetCoffeesPageQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetCoffeesPageQuery) Size() int {
	return q.size
}

func (q *GetCoffeesPageQuery) setPage(page int) error {
	if page < 0 {
		return errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is not greater than or equal to 0", page))
	}

	q.page = page
	return nil
}

func (q *GetCoffeesPageQuery) setSize(size int) error {
	if size < 1 || size > maxPageSize {
		return errs.NewValueIsOutOfRangeError("size", size, 1, maxPageSize)
	}

	q.size = size
	return nil
}

// CoffeesPageResponse is one page of catalog entries plus paging metadata,
// mirroring the envelope the HTTP surface serves.
type CoffeesPageResponse struct {
	Content       []CoffeeResponse
	TotalElements int64
	TotalPages    int
	CurrentPage   int
}
