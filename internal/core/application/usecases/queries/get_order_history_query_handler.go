package queries

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves the audit trail of an order from the
// database, sorted by the per-order sequence. An order that exists always has
// at least its creation event, so an existence check runs first to tell a
// missing order apart from a missing trail.
//
// Example:
//
//	handler := NewGetOrderHistoryQueryHandler(db)
//	query, _ := NewGetOrderHistoryQuery(orderID, false)
//
//	trail, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load audit trail: %w", err)
//	}
//	for _, entry := range trail {
//	    fmt.Printf("#%d %s -> %s\n", entry.Sequence, entry.FromStatus, entry.ToStatus)
//	}
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for audit trail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve the order's audit trail.
// Returns errs.ErrObjectNotFound when the order itself does not exist.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]HistoryEventResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var count int64
	if err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders WHERE id = ?`, query.OrderID().Bytes()).
		Scan(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	direction := "ASC"
	if query.Descending() {
		direction = "DESC"
	}

	events := make([]HistoryEventResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			sequence,
			recorded_at,
			actor_id,
			from_status,
			to_status,
			from_custodian_id,
			to_custodian_id,
			description
		FROM order_events
		WHERE order_id = ?
		ORDER BY sequence `+direction,
		query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			entry                          HistoryEventResponse
			id, orderID, actorID           uuid.UUID
			fromCustodianID, toCustodianID uuid.UUID
			fromStatus, toStatus           int
		)

		if err = rows.Scan(
			&id,
			&orderID,
			&entry.Sequence,
			&entry.RecordedAt,
			&actorID,
			&fromStatus,
			&toStatus,
			&fromCustodianID,
			&toCustodianID,
			&entry.Description,
		); err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if entry.ActorID, err = kernel.UUIDFromBytes(actorID[:]); err != nil {
			return nil, err
		}
		if entry.FromCustodianID, err = kernel.UUIDFromBytes(fromCustodianID[:]); err != nil {
			return nil, err
		}
		if entry.ToCustodianID, err = kernel.UUIDFromBytes(toCustodianID[:]); err != nil {
			return nil, err
		}

		entry.FromStatus = order.Status(fromStatus)
		entry.ToStatus = order.Status(toStatus)
		events = append(events, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
