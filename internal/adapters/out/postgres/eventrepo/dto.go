// Package eventrepo persists the append-only order audit log.
// Events are written together with the order row they describe and are never
// updated or deleted; the repository surface offers insert and read only.
package eventrepo

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// EventDTO represents the database structure for persisting audit events.
// The (order_id, sequence) pair is unique: at most one event exists per order
// version, which backs the one-event-per-transition guarantee at the schema level.
type EventDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_order_events_order_sequence"`
	Sequence        int       `gorm:"uniqueIndex:idx_order_events_order_sequence"`
	RecordedAt      time.Time
	ActorID         uuid.UUID `gorm:"type:uuid"`
	FromStatus      int
	ToStatus        int
	FromCustodianID uuid.UUID `gorm:"type:uuid"`
	ToCustodianID   uuid.UUID `gorm:"type:uuid"`
	Description     string
}

// TableName specifies the database table name for audit events.
// Overrides GORM's default naming convention to use "order_events".
func (EventDTO) TableName() string {
	return "order_events"
}

// fromDomain converts an audit event to its database representation.
func fromDomain(event order.Event) EventDTO {
	return EventDTO{
		ID:              event.ID().Bytes(),
		OrderID:         event.OrderID().Bytes(),
		Sequence:        event.Sequence(),
		RecordedAt:      event.RecordedAt(),
		ActorID:         event.ActorID().Bytes(),
		FromStatus:      int(event.FromStatus()),
		ToStatus:        int(event.ToStatus()),
		FromCustodianID: event.FromCustodianID().Bytes(),
		ToCustodianID:   event.ToCustodianID().Bytes(),
		Description:     event.Description(),
	}
}

// toDomain converts a database DTO back to an audit event via RestoreEvent.
func toDomain(dto EventDTO) (order.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.Event{}, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.Event{}, err
	}

	actorID, err := kernel.UUIDFromBytes(dto.ActorID[:])
	if err != nil {
		return order.Event{}, err
	}

	fromCustodianID, err := kernel.UUIDFromBytes(dto.FromCustodianID[:])
	if err != nil {
		return order.Event{}, err
	}

	toCustodianID, err := kernel.UUIDFromBytes(dto.ToCustodianID[:])
	if err != nil {
		return order.Event{}, err
	}

	return order.RestoreEvent(
		id,
		orderID,
		dto.Sequence,
		dto.RecordedAt,
		actorID,
		order.Status(dto.FromStatus),
		order.Status(dto.ToStatus),
		fromCustodianID,
		toCustodianID,
		dto.Description,
	)
}
