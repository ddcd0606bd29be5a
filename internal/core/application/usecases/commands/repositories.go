// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: validation, transaction
// management, and persistence.
package commands

import (
	"context"

	"coffeeshop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories its operation touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CoffeeRepoFactory provides access to the coffee repository within a transaction.
	CoffeeRepoFactory interface {
		CoffeeRepository() ports.CoffeeRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CoffeeUoW manages transactions for catalog-only operations.
	CoffeeUoW interface {
		TxManager
		CoffeeRepoFactory
	}

	// CoffeeUoWFactory creates new catalog unit of work instances.
	CoffeeUoWFactory interface {
		Create() CoffeeUoW
	}

	// CustomerUoW manages transactions for registry-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new registry unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// OrderUoW manages transactions for order lifecycle operations.
	// Order creation and update resolve customer and coffee references in the
	// same transaction that persists the aggregate, so the order unit of work
	// spans all three repositories.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		CoffeeRepoFactory
		CustomerRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
