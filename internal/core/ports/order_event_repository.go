package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
)

// HistoryOrder selects the direction events are returned in.
type HistoryOrder int

const (
	// HistoryAscending returns events oldest first. This is the default.
	HistoryAscending HistoryOrder = iota

	// HistoryDescending returns events newest first.
	HistoryDescending
)

// OrderEventRepository defines the persistence contract for the append-only
// order audit log. Events are only ever inserted; there is no update or
// delete operation on this contract by design of the log.
type OrderEventRepository interface {
	// Add appends audit events to the log. Events for one order are written
	// in the same transaction as the order row they describe.
	Add(ctx context.Context, events []order.Event) error

	// GetByOrderID retrieves the full event log of an order, sorted by the
	// per-order sequence in the requested direction.
	// Returns errs.ErrObjectNotFound when the order itself does not exist;
	// an existing order always has at least its creation event.
	GetByOrderID(ctx context.Context, orderID kernel.UUID, direction HistoryOrder) ([]order.Event, error)
}
