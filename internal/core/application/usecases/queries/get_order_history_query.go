package queries

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/guard"
)

var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves the full audit trail of one order.
// The trail is returned oldest first by default; set descending to get the
// most recent transition first.
//
// Example:
//
//	query, err := NewGetOrderHistoryQuery(orderID, true)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetOrderHistoryQueryHandler(db)
//	trail, err := handler.Handle(ctx, query)
type GetOrderHistoryQuery struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	descending bool

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a query to retrieve an order's audit trail.
func NewGetOrderHistoryQuery(orderID kernel.UUID, descending bool) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		orderID:    orderID,
		descending: descending,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderHistoryQueryIsNotConstructed if validation fails.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the order ID from the query.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Descending reports whether the trail should be returned newest first.
func (q GetOrderHistoryQuery) Descending() bool {
	return q.descending
}

// HistoryEventResponse is the read model of one audit trail entry.
type HistoryEventResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	Sequence        int
	RecordedAt      time.Time
	ActorID         kernel.UUID
	FromStatus      order.Status
	ToStatus        order.Status
	FromCustodianID kernel.UUID
	ToCustodianID   kernel.UUID
	Description     string
}
