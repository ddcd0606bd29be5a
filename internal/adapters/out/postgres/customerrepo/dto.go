// Package customerrepo provides data transfer objects and mapping functions
// for customer registry persistence.
package customerrepo

import (
	"github.com/google/uuid"

	"coffeeshop/internal/core/domain/model/customer"
	"coffeeshop/internal/core/domain/model/kernel"
)

// CustomerDTO represents the database structure for persisting customers.
// The email carries a unique index backing the registry's uniqueness rule.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string `gorm:"uniqueIndex"`
	Phone string
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
		Phone: aggregate.Phone(),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Phone)
}
