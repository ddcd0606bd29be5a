// Package coffeerepo provides data transfer objects and mapping functions for
// coffee catalog persistence. Implements the repository pattern for the coffee
// aggregate, handling conversion between domain entities and database rows.
package coffeerepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coffeeshop/internal/core/domain/model/coffee"
	"coffeeshop/internal/core/domain/model/kernel"
)

// CoffeeDTO represents the database structure for persisting coffees.
// The name carries a unique index backing the catalog's uniqueness rule.
type CoffeeDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name     string          `gorm:"uniqueIndex"`
	Price    decimal.Decimal `gorm:"type:numeric(12,2)"`
	ImageURL string
}

// TableName specifies the database table name for coffee entities.
func (CoffeeDTO) TableName() string {
	return "coffees"
}

func fromDomain(aggregate *coffee.Coffee) CoffeeDTO {
	return CoffeeDTO{
		ID:       aggregate.ID().Bytes(),
		Name:     aggregate.Name(),
		Price:    aggregate.Price(),
		ImageURL: aggregate.ImageURL(),
	}
}

func toDomain(dto CoffeeDTO) (*coffee.Coffee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return coffee.RestoreCoffee(id, dto.Name, dto.Price, dto.ImageURL)
}
