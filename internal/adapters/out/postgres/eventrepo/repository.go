package eventrepo

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderEventRepository implements OrderEventRepository using GORM.
type GormOrderEventRepository struct {
	db *gorm.DB
}

// NewGormOrderEventRepository creates a new GORM audit log repository.
func NewGormOrderEventRepository(db *gorm.DB) *GormOrderEventRepository {
	return &GormOrderEventRepository{db: db}
}

// Add appends audit events to the log. The unique (order_id, sequence) index
// rejects a duplicate write for the same order version.
func (r *GormOrderEventRepository) Add(ctx context.Context, events []order.Event) error {
	if len(events) == 0 {
		return nil
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, event := range events {
		if err := event.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(event))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}

// GetByOrderID retrieves the full event log of an order, sorted by the
// per-order sequence in the requested direction.
// Returns errs.ErrObjectNotFound when the order does not exist; an existing
// order always carries at least its creation event.
func (r *GormOrderEventRepository) GetByOrderID(
	ctx context.Context,
	orderID kernel.UUID,
	direction ports.HistoryOrder,
) ([]order.Event, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	sort := "sequence ASC"
	if direction == ports.HistoryDescending {
		sort = "sequence DESC"
	}

	var dtos []EventDTO
	if err := r.db.WithContext(ctx).
		Order(sort).
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	if len(dtos) == 0 {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}

	events := make([]order.Event, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
