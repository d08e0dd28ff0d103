// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper indexing
// for efficient querying by origin and custodian.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductRef  string
	Quantity    int
	OriginID    uuid.UUID `gorm:"type:uuid;index"`
	CustodianID uuid.UUID `gorm:"type:uuid;index"`
	Status      int       `gorm:"index"`
	CreatedAt   time.Time
	Version     int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		ProductRef:  aggregate.ProductRef(),
		Quantity:    aggregate.Quantity(),
		OriginID:    aggregate.OriginID().Bytes(),
		CustodianID: aggregate.CustodianID().Bytes(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		Version:     aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, custody, and the
// concurrency version using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	originID, err := kernel.UUIDFromBytes(dto.OriginID[:])
	if err != nil {
		return nil, err
	}

	custodianID, err := kernel.UUIDFromBytes(dto.CustodianID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.ProductRef,
		dto.Quantity,
		originID,
		custodianID,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.Version,
	)
}
