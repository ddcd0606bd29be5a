// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. An order and its line items are one consistency boundary,
// so every write here touches the orders row and its order_items rows together.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The total is stored denormalized for cheap reads; the write path always
// recomputes it from the aggregate's items before saving.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	DateOrder  time.Time
	Status     int             `gorm:"index"`
	Total      decimal.Decimal `gorm:"type:numeric(12,2)"`
	Items      []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one order line. The composite primary key
// (order_id, coffee_id) is what makes a duplicate coffee per order
// impossible at the storage level. The coffee_id deliberately carries no
// foreign key to the catalog: the line keeps its price snapshot even if the
// coffee is later deleted.
type OrderItemDTO struct {
	OrderID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CoffeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity int
	Subtotal decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			CoffeeID: item.CoffeeID().Bytes(),
			Quantity: item.Quantity(),
			Subtotal: item.Subtotal(),
		})
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		DateOrder:  aggregate.DateOrder(),
		Status:     int(aggregate.Status()),
		Total:      aggregate.Total(),
		Items:      itemDTOs,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		coffeeID, idErr := kernel.UUIDFromBytes(itemDTO.CoffeeID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.RestoreItem(coffeeID, itemDTO.Quantity, itemDTO.Subtotal)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, items, dto.DateOrder, order.Status(dto.Status))
}
