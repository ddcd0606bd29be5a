// Package http exposes the café API over HTTP.
// Handlers translate between the JSON surface and the application's commands
// and queries; all business rules live below this layer.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/domain/model/order"
	"coffeeshop/internal/core/domain/services"
	"coffeeshop/internal/pkg/errs"
)

const (
	defaultPage = 0
	defaultSize = 20
)

// Handlers bundles every command and query handler the server dispatches to.
type Handlers struct {
	CreateCoffee      commands.CreateCoffeeCommandHandler
	UpdateCoffee      commands.UpdateCoffeeCommandHandler
	ChangeCoffeeImage commands.ChangeCoffeeImageCommandHandler
	DeleteCoffee      commands.DeleteCoffeeCommandHandler

	CreateCustomer      commands.CreateCustomerCommandHandler
	UpdateCustomer      commands.UpdateCustomerCommandHandler
	ChangeCustomerEmail commands.ChangeCustomerEmailCommandHandler
	DeleteCustomer      commands.DeleteCustomerCommandHandler

	CreateOrder       commands.CreateOrderCommandHandler
	UpdateOrder       commands.UpdateOrderCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler

	GetCoffee           queries.GetCoffeeQueryHandler
	GetAllCoffees       queries.GetAllCoffeesQueryHandler
	GetCoffeesPage      queries.GetCoffeesPageQueryHandler
	GetCustomer         queries.GetCustomerQueryHandler
	GetAllCustomers     queries.GetAllCustomersQueryHandler
	GetCustomersPage    queries.GetCustomersPageQueryHandler
	GetOrder            queries.GetOrderQueryHandler
	GetAllOrders        queries.GetAllOrdersQueryHandler
	GetOrdersByStatus   queries.GetOrdersByStatusQueryHandler
	GetOrdersByCustomer queries.GetOrdersByCustomerQueryHandler
}

// Server routes café API requests to the application layer.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/coffees", s.GetCoffees)
	api.GET("/coffees/page", s.GetCoffeesPage)
	api.GET("/coffees/:id", s.GetCoffee)
	api.POST("/coffees", s.CreateCoffee)
	api.PUT("/coffees/:id", s.UpdateCoffee)
	api.PATCH("/coffees/:id/image", s.ChangeCoffeeImage)
	api.DELETE("/coffees/:id", s.DeleteCoffee)

	api.GET("/customers", s.GetCustomers)
	api.GET("/customers/page", s.GetCustomersPage)
	api.GET("/customers/:id", s.GetCustomer)
	api.GET("/customers/:id/orders", s.GetOrdersByCustomer)
	api.POST("/customers", s.CreateCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.PATCH("/customers/:id/email", s.ChangeCustomerEmail)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/status/:status", s.GetOrdersByStatus)
	api.POST("/orders", s.CreateOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)
}

// GetCoffees handles GET /api/coffees - lists the whole catalog.
// An empty catalog is 204, not an empty array.
func (s *Server) GetCoffees(ctx echo.Context) error {
	query := queries.NewGetAllCoffeesQuery()

	coffees, err := s.handlers.GetAllCoffees.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	if len(coffees) == 0 {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, coffeeResponsesFrom(coffees))
}

// GetCoffeesPage handles GET /api/coffees/page - lists one catalog page.
func (s *Server) GetCoffeesPage(ctx echo.Context) error {
	page, size, err := pageParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCoffeesPageQuery(page, size)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.GetCoffeesPage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CoffeePageResponse{
		Content:       coffeeResponsesFrom(result.Content),
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
		CurrentPage:   result.CurrentPage,
	})
}

// GetCoffee handles GET /api/coffees/:id - retrieves one catalog entry.
func (s *Server) GetCoffee(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCoffeeQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	coffee, err := s.handlers.GetCoffee.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, coffeeResponseFrom(coffee))
}

// CreateCoffee handles POST /api/coffees - adds a catalog entry.
func (s *Server) CreateCoffee(ctx echo.Context) error {
	var request CoffeeRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBindError(ctx)
	}

	coffeeID := kernel.NewUUID()
	cmd, err := commands.NewCreateCoffeeCommand(coffeeID, request.Name, request.Price, request.ImageURL)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateCoffee.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCoffee(ctx, http.StatusCreated, coffeeID)
}

// UpdateCoffee handles PUT /api/coffees/:id - rewrites a catalog entry.
func (s *Server) UpdateCoffee(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request CoffeeRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBindError(ctx)
	}

	cmd, err := commands.NewUpdateCoffeeCommand(id, request.Name, request.Price, request.ImageURL)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateCoffee.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCoffee(ctx, http.StatusOK, id)
}

// ChangeCoffeeImage handles PATCH /api/coffees/:id/image - replaces the image URL.
func (s *Server) ChangeCoffeeImage(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request ImageRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBindError(ctx)
	}

	cmd, err := commands.NewChangeCoffeeImageCommand(id, request.ImageURL)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.ChangeCoffeeImage.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCoffee(ctx, http.StatusOK, id)
}

// DeleteCoffee handles DELETE /api/coffees/:id - removes a catalog entry.
func (s *Server) DeleteCoffee(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteCoffeeCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteCoffee.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomers handles GET /api/customers - lists the whole registry.
// An empty registry is 204, not an empty array.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery()

	customers, err := s.handlers.GetAllCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	if len(customers) == 0 {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, customerResponsesFrom(customers))
}

// GetCustomersPage handles GET /api/customers/page - lists one registry page.
func (s *Server) GetCustomersPage(ctx echo.Context) error {
	page, size, err := pageParams(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomersPageQuery(page, size)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.GetCustomersPage.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CustomerPageResponse{
		Content:       customerResponsesFrom(result.Content),
		TotalElements: result.TotalElements,
		TotalPages:    result.TotalPages,
		CurrentPage:   result.CurrentPage,
	})
}

// GetCustomer handles GET /api/customers/:id - retrieves one registry entry.
func (s *Server) GetCustomer(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	customer, err := s.handlers.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerResponseFrom(customer))
}

// CreateCustomer handles POST /api/customers - registers a customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request CustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBindError(ctx)
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, request.Name, request.Email, request.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCustomer(ctx, http.StatusCreated, customerID)
}

// UpdateCustomer handles PUT /api/customers/:id - rewrites a customer record.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request CustomerRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBindError(ctx)
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, request.Name, request.Email, request.Phone)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCustomer(ctx, http.StatusOK, id)
}

// ChangeCustomerEmail handles PATCH /api/customers/:id/email - replaces the email.
func (s *Server) ChangeCustomerEmail(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request EmailRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBindError(ctx)
	}

	cmd, err := commands.NewChangeCustomerEmailCommand(id, request.Email)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.ChangeCustomerEmail.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithCustomer(ctx, http.StatusOK, id)
}

// DeleteCustomer handles DELETE /api/customers/:id - removes a customer.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/orders - lists every order.
// No orders yet is 204, not an empty array.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	if len(orders) == 0 {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, orderResponsesFrom(orders))
}

// GetOrder handles GET /api/orders/:id - retrieves one order with its items.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderResponseFrom(result))
}

// GetOrdersByStatus handles GET /api/orders/status/:status - filters by status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByStatusQuery(ctx.Param("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.handlers.GetOrdersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	if len(orders) == 0 {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, orderResponsesFrom(orders))
}

// GetOrdersByCustomer handles GET /api/customers/:id/orders - one customer's orders.
// An unknown customer is 404; a known customer with no orders is 204.
func (s *Server) GetOrdersByCustomer(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrdersByCustomerQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.handlers.GetOrdersByCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	if len(orders) == 0 {
		return ctx.NoContent(http.StatusNoContent)
	}

	return ctx.JSON(http.StatusOK, orderResponsesFrom(orders))
}

// CreateOrder handles POST /api/orders - places an order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request OrderRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBindError(ctx)
	}

	customerID, items, err := orderParams(request)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusCreated, orderID)
}

// UpdateOrder handles PUT /api/orders/:id - rewrites a pending order's contents.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request OrderRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBindError(ctx)
	}

	customerID, items, err := orderParams(request)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, customerID, items)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// ChangeOrderStatus handles PATCH /api/orders/:id/status - moves the lifecycle.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var request StatusRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBindError(ctx)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, request.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return s.respondWithOrder(ctx, http.StatusOK, id)
}

// DeleteOrder handles DELETE /api/orders/:id - removes an order and its items.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := idParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) respondWithCoffee(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetCoffeeQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	coffee, err := s.handlers.GetCoffee.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, coffeeResponseFrom(coffee))
}

func (s *Server) respondWithCustomer(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	customer, err := s.handlers.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, customerResponseFrom(customer))
}

func (s *Server) respondWithOrder(ctx echo.Context, status int, id kernel.UUID) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(status, orderResponseFrom(result))
}

func idParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func pageParams(ctx echo.Context) (page, size int, err error) {
	page, size = defaultPage, defaultSize

	if raw := ctx.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("page", err)
		}
	}

	if raw := ctx.QueryParam("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("size", err)
		}
	}

	return page, size, nil
}

func orderParams(request OrderRequest) (kernel.UUID, []services.ItemRequest, error) {
	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return kernel.UUID{}, nil, errs.NewValueIsInvalidErrorWithCause("customerId", err)
	}

	items := make([]services.ItemRequest, 0, len(request.Items))
	for _, item := range request.Items {
		coffeeID, idErr := kernel.UUIDFromString(item.CoffeeID)
		if idErr != nil {
			return kernel.UUID{}, nil, errs.NewValueIsInvalidErrorWithCause("coffeeId", idErr)
		}

		items = append(items, services.ItemRequest{
			CoffeeID: coffeeID,
			Quantity: item.Quantity,
		})
	}

	return customerID, items, nil
}

// writeError maps application errors onto HTTP statuses:
// validation failures are 400, missing objects 404, uniqueness and
// lifecycle conflicts 409, everything else 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, order.ErrDuplicateCoffee),
		errors.Is(err, commands.ErrItemsAreRequired):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, order.ErrOrderIsNotEditable):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func writeBindError(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: "invalid request body",
	})
}
