// Package actorrepo persists the actor directory. The order workflow treats
// actors as read-only reference data; writes exist only for directory
// administration and seeding.
package actorrepo

import (
	"supplychain/internal/core/domain/model/actor"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ActorDTO represents the database structure for persisting directory entries.
type ActorDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string `gorm:"uniqueIndex"`
	Role  int    `gorm:"index"`
}

// TableName specifies the database table name for directory entries.
// Overrides GORM's default naming convention to use "actors".
func (ActorDTO) TableName() string {
	return "actors"
}

// fromDomain converts an actor to its database representation.
func fromDomain(entity *actor.Actor) ActorDTO {
	return ActorDTO{
		ID:    entity.ID().Bytes(),
		Name:  entity.Name(),
		Email: entity.Email(),
		Role:  int(entity.Role()),
	}
}

// toDomain converts a database DTO to an actor entity.
func toDomain(dto ActorDTO) (*actor.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return actor.NewActor(id, dto.Name, dto.Email, actor.Role(dto.Role))
}
