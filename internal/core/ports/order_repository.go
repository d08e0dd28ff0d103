// Package ports defines repository interfaces for the supply-chain domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their origin and custody.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate using the
	// aggregate version as an optimistic-concurrency token. When the stored
	// row has moved past the version the aggregate was loaded at, Update
	// writes nothing and returns errs.ErrVersionConflict; the caller decides
	// whether to re-read and report or retry.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound when no order has the identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByOrigin retrieves all orders created by the given actor,
	// newest first.
	GetAllByOrigin(ctx context.Context, originID kernel.UUID) ([]*order.Order, error)

	// GetAllByCustodian retrieves all orders currently held by the given
	// actor, newest first.
	GetAllByCustodian(ctx context.Context, custodianID kernel.UUID) ([]*order.Order, error)
}
