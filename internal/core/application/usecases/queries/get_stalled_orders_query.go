package queries

import (
	"errors"
	"fmt"
	"time"

	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrGetStalledOrdersQueryIsNotConstructed = errors.New(
	"GetStalledOrdersQuery must be created via NewGetStalledOrdersQuery constructor",
)

// GetStalledOrdersQuery retrieves orders still awaiting a manufacturer's
// decision after the given age. Used by the monitoring job to surface orders
// nobody has acted on.
//
// Example:
//
//	query, err := NewGetStalledOrdersQuery(48 * time.Hour)
//	if err != nil {
//	    return fmt.Errorf("invalid threshold: %w", err)
//	}
//
//	handler := NewGetStalledOrdersQueryHandler(db)
//	stalled, err := handler.Handle(ctx, query)
type GetStalledOrdersQuery struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalledOrdersQuery creates a query for orders pending longer than olderThan.
func NewGetStalledOrdersQuery(olderThan time.Duration) (GetStalledOrdersQuery, error) {
	if olderThan <= 0 {
		return GetStalledOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"olderThan", fmt.Errorf("%s is not a positive duration", olderThan))
	}

	return GetStalledOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStalledOrdersQueryIsNotConstructed if validation fails.
func (q GetStalledOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalledOrdersQueryIsNotConstructed)
}

// OlderThan returns the pending-age threshold from the query.
func (q GetStalledOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}
