package coffeerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"coffeeshop/internal/core/domain/model/coffee"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

// GormCoffeeRepository implements ports.CoffeeRepository using GORM.
type GormCoffeeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCoffeeRepository creates a new GORM coffee repository.
func NewGormCoffeeRepository(db *gorm.DB, tracker aggregateTracker) *GormCoffeeRepository {
	return &GormCoffeeRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new coffee to the database. A name collision surfaces as an
// object-already-exists error via the unique index.
func (r *GormCoffeeRepository) Add(ctx context.Context, aggregate *coffee.Coffee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("name", aggregate.Name(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing coffee to the database.
func (r *GormCoffeeRepository) Update(ctx context.Context, aggregate *coffee.Coffee) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CoffeeDTO{}).Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":      dto.Name,
			"price":     dto.Price,
			"image_url": dto.ImageURL,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("name", aggregate.Name(), result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("coffeeId", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a coffee by ID.
func (r *GormCoffeeRepository) Get(ctx context.Context, id kernel.UUID) (*coffee.Coffee, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CoffeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("coffeeId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves a coffee by its unique name.
func (r *GormCoffeeRepository) GetByName(ctx context.Context, name string) (*coffee.Coffee, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	var dto CoffeeDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("name", name)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes a coffee from the database.
func (r *GormCoffeeRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CoffeeDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("coffeeId", id)
	}

	return nil
}
