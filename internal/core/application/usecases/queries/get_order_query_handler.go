package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order's current state from the database.
// Uses direct SQL for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	orderView, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    log.Printf("Order %s does not exist", orderID)
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve the order.
// Returns errs.ErrObjectNotFound when no order has the requested identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	response, err := scanOrderRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	return response, nil
}

// scanOrderRow maps one row of the canonical order column list into the read
// model. Shared by every handler that selects those columns.
func scanOrderRow(scan func(dest ...any) error) (OrderResponse, error) {
	var (
		response               OrderResponse
		id, originID, custodID uuid.UUID
		status                 int
		createdAt              time.Time
	)

	if err := scan(
		&id,
		&response.ProductRef,
		&response.Quantity,
		&originID,
		&custodID,
		&status,
		&createdAt,
		&response.Version,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}

	origin, err := kernel.UUIDFromBytes(originID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	custodian, err := kernel.UUIDFromBytes(custodID[:])
	if err != nil {
		return OrderResponse{}, err
	}

	response.ID = orderID
	response.OriginID = origin
	response.CustodianID = custodian
	response.Status = order.Status(status)
	response.CreatedAt = createdAt

	return response, nil
}
