package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCoffeesPageQueryHandler retrieves one catalog page from the database.
// Runs a count first so the response can carry total element and page counts.
type GetCoffeesPageQueryHandler struct {
	db *gorm.DB
}

// NewGetCoffeesPageQueryHandler creates a handler for paged catalog queries.
// Requires a GORM database connection for query execution.
func NewGetCoffeesPageQueryHandler(db *gorm.DB) GetCoffeesPageQueryHandler {
	return GetCoffeesPageQueryHandler{db: db}
}

// Handle executes the paged query. A page past the end of the catalog comes
// back with empty content, not an error.
func (h GetCoffeesPageQueryHandler) Handle(
	ctx context.Context,
	query GetCoffeesPageQuery,
) (CoffeesPageResponse, error) {
	if err := query.Validate(); err != nil {
		return CoffeesPageResponse{}, err
	}

	var total int64
	err := h.db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM coffees`).Scan(&total).Error
	if err != nil {
		return CoffeesPageResponse{}, err
	}

	coffees, err := scanCoffees(h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			price,
			image_url
		FROM coffees
		ORDER BY name
		LIMIT ? OFFSET ?
	`, query.Size(), query.Page()*query.Size()))
	if err != nil {
		return CoffeesPageResponse{}, err
	}

	return CoffeesPageResponse{
		Content:       coffees,
		TotalElements: total,
		TotalPages:    totalPages(total, query.Size()),
		CurrentPage:   query.Page(),
	}, nil
}

// totalPages rounds up; zero elements means zero pages.
func totalPages(total int64, size int) int {
	return int((total + int64(size) - 1) / int64(size))
}
