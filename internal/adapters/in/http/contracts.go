package http

import (
	"time"

	"github.com/shopspring/decimal"

	"coffeeshop/internal/core/application/usecases/queries"
)

// Request bodies accepted by the API.
type (
	// CoffeeRequest carries a catalog entry's full contents, used by both
	// create and update.
	CoffeeRequest struct {
		Name     string          `json:"name"`
		Price    decimal.Decimal `json:"price"`
		ImageURL string          `json:"imageUrl"`
	}

	// ImageRequest carries the partial update replacing a coffee's image.
	ImageRequest struct {
		ImageURL string `json:"imageUrl"`
	}

	// CustomerRequest carries a customer record's full contents.
	CustomerRequest struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone,omitempty"`
	}

	// EmailRequest carries the partial update replacing a customer's email.
	EmailRequest struct {
		Email string `json:"email"`
	}

	// OrderItemRequest is one requested order line.
	OrderItemRequest struct {
		CoffeeID string `json:"coffeeId"`
		Quantity int    `json:"quantity"`
	}

	// OrderRequest carries an order's contents, used by both create and update.
	OrderRequest struct {
		CustomerID string             `json:"customerId"`
		Items      []OrderItemRequest `json:"items"`
	}

	// StatusRequest carries the partial update moving an order's status.
	StatusRequest struct {
		Status string `json:"status"`
	}
)

// Response bodies served by the API.
type (
	// ErrorResponse is the uniform error body.
	ErrorResponse struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}

	// CoffeeResponse is one catalog entry.
	CoffeeResponse struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Price    decimal.Decimal `json:"price"`
		ImageURL string          `json:"imageUrl"`
	}

	// CoffeePageResponse is one catalog page with paging metadata.
	CoffeePageResponse struct {
		Content       []CoffeeResponse `json:"content"`
		TotalElements int64            `json:"totalElements"`
		TotalPages    int              `json:"totalPages"`
		CurrentPage   int              `json:"currentPage"`
	}

	// CustomerResponse is one registry entry.
	CustomerResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
		Phone string `json:"phone,omitempty"`
	}

	// CustomerPageResponse is one registry page with paging metadata.
	CustomerPageResponse struct {
		Content       []CustomerResponse `json:"content"`
		TotalElements int64              `json:"totalElements"`
		TotalPages    int                `json:"totalPages"`
		CurrentPage   int                `json:"currentPage"`
	}

	// OrderItemResponse is one order line with its snapshotted subtotal.
	OrderItemResponse struct {
		CoffeeID string          `json:"coffeeId"`
		Quantity int             `json:"quantity"`
		Subtotal decimal.Decimal `json:"subtotal"`
	}

	// OrderResponse is one full order.
	OrderResponse struct {
		ID         string              `json:"id"`
		CustomerID string              `json:"customerId"`
		DateOrder  time.Time           `json:"dateOrder"`
		Status     string              `json:"status"`
		Items      []OrderItemResponse `json:"items"`
		Total      decimal.Decimal     `json:"total"`
	}
)

func coffeeResponseFrom(coffee queries.CoffeeResponse) CoffeeResponse {
	return CoffeeResponse{
		ID:       coffee.ID.String(),
		Name:     coffee.Name,
		Price:    coffee.Price,
		ImageURL: coffee.ImageURL,
	}
}

func coffeeResponsesFrom(coffees []queries.CoffeeResponse) []CoffeeResponse {
	responses := make([]CoffeeResponse, len(coffees))
	for i, coffee := range coffees {
		responses[i] = coffeeResponseFrom(coffee)
	}
	return responses
}

func customerResponseFrom(customer queries.CustomerResponse) CustomerResponse {
	return CustomerResponse{
		ID:    customer.ID.String(),
		Name:  customer.Name,
		Email: customer.Email,
		Phone: customer.Phone,
	}
}

func customerResponsesFrom(customers []queries.CustomerResponse) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = customerResponseFrom(customer)
	}
	return responses
}

func orderResponseFrom(order queries.OrderResponse) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			CoffeeID: item.CoffeeID.String(),
			Quantity: item.Quantity,
			Subtotal: item.Subtotal,
		}
	}

	return OrderResponse{
		ID:         order.ID.String(),
		CustomerID: order.CustomerID.String(),
		DateOrder:  order.DateOrder,
		Status:     order.Status,
		Items:      items,
		Total:      order.Total,
	}
}

func orderResponsesFrom(orders []queries.OrderResponse) []OrderResponse {
	responses := make([]OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = orderResponseFrom(order)
	}
	return responses
}
