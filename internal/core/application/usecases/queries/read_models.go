// Package queries contains read-only operations implementing the query side
// of the CQRS split. Handlers go straight to the database with raw SQL and
// return flat read models, bypassing the aggregates entirely.
package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
)

// CoffeeResponse represents one catalog entry as read models expose it.
type CoffeeResponse struct {
	ID       kernel.UUID
	Name     string
	Price    decimal.Decimal
	ImageURL string
}

// CustomerResponse represents one registry entry as read models expose it.
type CustomerResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
	Phone string
}

// OrderItemResponse represents one order line with its snapshotted subtotal.
type OrderItemResponse struct {
	CoffeeID kernel.UUID
	Quantity int
	Subtotal decimal.Decimal
}

// OrderResponse represents a full order read model: header, lines and total.
type OrderResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	DateOrder  time.Time
	Status     string
	Items      []OrderItemResponse
	Total      decimal.Decimal
}

func scanCoffees(db *gorm.DB) ([]CoffeeResponse, error) {
	rows, err := db.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	coffees := make([]CoffeeResponse, 0)
	for rows.Next() {
		var coffeeResp CoffeeResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &coffeeResp.Name, &coffeeResp.Price, &coffeeResp.ImageURL); err != nil {
			return nil, err
		}

		coffeeID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		coffeeResp.ID = coffeeID
		coffees = append(coffees, coffeeResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return coffees, nil
}

func scanCustomers(db *gorm.DB) ([]CustomerResponse, error) {
	rows, err := db.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]CustomerResponse, 0)
	for rows.Next() {
		var customerResp CustomerResponse
		var id uuid.UUID

		if err = rows.Scan(&id, &customerResp.Name, &customerResp.Email, &customerResp.Phone); err != nil {
			return nil, err
		}

		customerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		customerResp.ID = customerID
		customers = append(customers, customerResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

// queryOrders runs one joined select over orders and their items and folds
// the flat rows back into order read models. The condition is appended to
// the WHERE-less base query, so it must start with WHERE if it filters.
// Row order groups by order id first so each order's lines arrive together.
func queryOrders(ctx context.Context, db *gorm.DB, condition string, args ...any) ([]OrderResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.date_order,
			o.status,
			o.total,
			i.coffee_id,
			i.quantity,
			i.subtotal
		FROM orders o
		JOIN order_items i ON i.order_id = o.id
	`+condition+`
		ORDER BY o.date_order, o.id, i.coffee_id
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		var orderID, customerID, coffeeID uuid.UUID
		var dateOrder time.Time
		var status int
		var total decimal.Decimal
		var item OrderItemResponse

		err = rows.Scan(
			&orderID,
			&customerID,
			&dateOrder,
			&status,
			&total,
			&coffeeID,
			&item.Quantity,
			&item.Subtotal,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		itemCoffeeID, idErr := kernel.UUIDFromBytes(coffeeID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.CoffeeID = itemCoffeeID

		if len(orders) == 0 || !orders[len(orders)-1].ID.IsEqual(id) {
			ownerID, idErr := kernel.UUIDFromBytes(customerID[:])
			if idErr != nil {
				return nil, idErr
			}
			orders = append(orders, OrderResponse{
				ID:         id,
				CustomerID: ownerID,
				DateOrder:  dateOrder,
				Status:     order.Status(status).String(),
				Total:      total,
			})
		}

		last := &orders[len(orders)-1]
		last.Items = append(last.Items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
