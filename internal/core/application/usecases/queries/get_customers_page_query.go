package queries

import (
	"errors"
	"fmt"

	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

var ErrGetCustomersPageQueryIsNotConstructed = errors.New(
	"GetCustomersPageQuery must be created via NewGetCustomersPageQuery constructor",
)

// GetCustomersPageQuery retrieves one page of the registry. Pages are
// zero-based and sorted by name.
type GetCustomersPageQuery struct { //nolint:recvcheck //using for validation
	page int
	size int

	guard guard.ConstructorGuard
}

// NewGetCustomersPageQuery creates a paged registry query.
// The page number is zero-based; size must be between 1 and 100.
func NewGetCustomersPageQuery(page, size int) (GetCustomersPageQuery, error) {
	pageQuery := GetCustomersPageQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pageQuery.setPage(page),
		pageQuery.setSize(size),
	); err != nil {
		return GetCustomersPageQuery{}, err
	}

	return pageQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomersPageQueryIsNotConstructed if validation fails.
func (q GetCustomersPageQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersPageQueryIsNotConstructed)
}

// Page returns the zero-based page number.
func (q GetCustomersPageQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetCustomersPageQuery) Size() int {
	return q.size
}

func (q *GetCustomersPageQuery) setPage(page int) error {
	if page < 0 {
		return errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is not greater than or equal to 0", page))
	}

	q.page = page
	return nil
}

func (q *GetCustomersPageQuery) setSize(size int) error {
	if size < 1 || size > maxPageSize {
		return errs.NewValueIsOutOfRangeError("size", size, 1, maxPageSize)
	}

	q.size = size
	return nil
}

// CustomersPageResponse is one page of registry entries plus paging metadata.
type CustomersPageResponse struct {
	Content       []CustomerResponse
	TotalElements int64
	TotalPages    int
	CurrentPage   int
}
