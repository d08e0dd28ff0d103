package queries

import (
	"context"
	"time"

	"supplychain/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStalledOrdersQueryHandler finds orders that have sat in Pending past a
// threshold. Oldest first, so the most neglected orders surface at the top.
//
// Example:
//
//	handler := NewGetStalledOrdersQueryHandler(db)
//	query, _ := NewGetStalledOrdersQuery(48 * time.Hour)
//
//	stalled, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("stalled order scan failed: %w", err)
//	}
//	for _, o := range stalled {
//	    log.Printf("order %s pending since %s", o.ID, o.CreatedAt)
//	}
type GetStalledOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStalledOrdersQueryHandler creates a handler for stalled order scans.
// Requires a GORM database connection for query execution.
func NewGetStalledOrdersQueryHandler(db *gorm.DB) GetStalledOrdersQueryHandler {
	return GetStalledOrdersQueryHandler{db: db}
}

// Handle executes the scan and returns Pending orders created before the
// threshold, oldest first.
func (h GetStalledOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStalledOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())
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
		WHERE status = ? AND created_at < ?
		ORDER BY created_at
	`, int(order.Pending), cutoff).Rows()
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
