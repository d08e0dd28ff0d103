package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetActorOrdersQueryHandler lists the orders an actor made or currently
// holds, newest first. Backs the dashboard inbox and outbox views.
//
// Example:
//
//	handler := NewGetActorOrdersQueryHandler(db)
//	query, _ := NewGetActorOrdersQuery(factoryID, RelationReceived)
//
//	inbox, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d orders awaiting action\n", len(inbox))
type GetActorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActorOrdersQueryHandler creates a handler for actor order listings.
// Requires a GORM database connection for query execution.
func NewGetActorOrdersQueryHandler(db *gorm.DB) GetActorOrdersQueryHandler {
	return GetActorOrdersQueryHandler{db: db}
}

// Handle executes the query and returns the actor's orders, newest first.
// An actor with no orders gets an empty slice, not an error.
func (h GetActorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActorOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter := "origin_id = ?"
	if query.Relation() == RelationReceived {
		filter = "custodian_id = ?"
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_ref,
			quantity,
			origin_id,
			custodian_id,
			status,
			created_at,
			version
		FROM orders
		WHERE `+filter+`
		ORDER BY created_at DESC, id
	`, query.ActorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		response, scanErr := scanOrderRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
