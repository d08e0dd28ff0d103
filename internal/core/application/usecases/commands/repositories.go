// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"supplychain/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderEventRepoFactory provides access to the audit log repository within a transaction.
	OrderEventRepoFactory interface {
		OrderEventRepository() ports.OrderEventRepository
	}

	// ActorRepoFactory provides access to the actor directory within a transaction.
	ActorRepoFactory interface {
		ActorRepository() ports.ActorRepository
	}

	// UoW manages transactions across the order aggregate, its audit log, and
	// the actor directory. Every command writes the order row and its events
	// in the same transaction, so there is no narrower unit of work.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   eventRepo := uow.OrderEventRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		OrderEventRepoFactory
		ActorRepoFactory
	}

	// UoWFactory creates new unit of work instances for command handlers.
	UoWFactory interface {
		Create() UoW
	}
)
