package cmd

import (
	httpin "coffeeshop/internal/adapters/in/http"
	"coffeeshop/internal/adapters/out/postgres"
	"coffeeshop/internal/core/application/usecases/commands"
	"coffeeshop/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

// CreateHTTPHandlers assembles every handler the HTTP server dispatches to.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateCoffee:      c.CreateCreateCoffeeCommandHandler(),
		UpdateCoffee:      c.CreateUpdateCoffeeCommandHandler(),
		ChangeCoffeeImage: c.CreateChangeCoffeeImageCommandHandler(),
		DeleteCoffee:      c.CreateDeleteCoffeeCommandHandler(),

		CreateCustomer:      c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:      c.CreateUpdateCustomerCommandHandler(),
		ChangeCustomerEmail: c.CreateChangeCustomerEmailCommandHandler(),
		DeleteCustomer:      c.CreateDeleteCustomerCommandHandler(),

		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		UpdateOrder:       c.CreateUpdateOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),

		GetCoffee:           c.CreateGetCoffeeQueryHandler(),
		GetAllCoffees:       c.CreateGetAllCoffeesQueryHandler(),
		GetCoffeesPage:      c.CreateGetCoffeesPageQueryHandler(),
		GetCustomer:         c.CreateGetCustomerQueryHandler(),
		GetAllCustomers:     c.CreateGetAllCustomersQueryHandler(),
		GetCustomersPage:    c.CreateGetCustomersPageQueryHandler(),
		GetOrder:            c.CreateGetOrderQueryHandler(),
		GetAllOrders:        c.CreateGetAllOrdersQueryHandler(),
		GetOrdersByStatus:   c.CreateGetOrdersByStatusQueryHandler(),
		GetOrdersByCustomer: c.CreateGetOrdersByCustomerQueryHandler(),
	}
}

func (c *CompositionRoot) CreateCreateCoffeeCommandHandler() commands.CreateCoffeeCommandHandler {
	return commands.NewCreateCoffeeCommandHandler(c.coffeeUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCoffeeCommandHandler() commands.UpdateCoffeeCommandHandler {
	return commands.NewUpdateCoffeeCommandHandler(c.coffeeUoWFactory())
}

func (c *CompositionRoot) CreateChangeCoffeeImageCommandHandler() commands.ChangeCoffeeImageCommandHandler {
	return commands.NewChangeCoffeeImageCommandHandler(c.coffeeUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCoffeeCommandHandler() commands.DeleteCoffeeCommandHandler {
	return commands.NewDeleteCoffeeCommandHandler(c.coffeeUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateChangeCustomerEmailCommandHandler() commands.ChangeCustomerEmailCommandHandler {
	return commands.NewChangeCustomerEmailCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	return commands.NewCancelStaleOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetCoffeeQueryHandler() queries.GetCoffeeQueryHandler {
	return queries.NewGetCoffeeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCoffeesQueryHandler() queries.GetAllCoffeesQueryHandler {
	return queries.NewGetAllCoffeesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCoffeesPageQueryHandler() queries.GetCoffeesPageQueryHandler {
	return queries.NewGetCoffeesPageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersPageQueryHandler() queries.GetCustomersPageQueryHandler {
	return queries.NewGetCustomersPageQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByCustomerQueryHandler() queries.GetOrdersByCustomerQueryHandler {
	return queries.NewGetOrdersByCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) coffeeUoWFactory() commands.CoffeeUoWFactory {
	return FuncCoffeeUoWFactory(func() commands.CoffeeUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncCoffeeUoWFactory func() commands.CoffeeUoW

func (f FuncCoffeeUoWFactory) Create() commands.CoffeeUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
