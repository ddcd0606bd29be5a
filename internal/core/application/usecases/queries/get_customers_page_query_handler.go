package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCustomersPageQueryHandler retrieves one registry page from the database.
type GetCustomersPageQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomersPageQueryHandler creates a handler for paged registry queries.
// Requires a GORM database connection for query execution.
func NewGetCustomersPageQueryHandler(db *gorm.DB) GetCustomersPageQueryHandler {
	return GetCustomersPageQueryHandler{db: db}
}

// Handle executes the paged query. A page past the end of the registry comes
// back with empty content, not an error.
func (h GetCustomersPageQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersPageQuery,
) (CustomersPageResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomersPageResponse{}, err
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM customers`).Scan(&total).Error
	if err != nil {
		return CustomersPageResponse{}, err
	}

	customers, err := scanCustomers(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			email,
			phone
		FROM customers
		ORDER BY name
		LIMIT ? OFFSET ?
	`, query.Size(), query.Page()*query.Size()))
	if err != nil {
		return CustomersPageResponse{}, err
	}

	return CustomersPageResponse{
		Content:       customers,
		TotalElements: total,
		TotalPages:    totalPages(total, query.Size()),
		CurrentPage:   query.Page(),
	}, nil
}
