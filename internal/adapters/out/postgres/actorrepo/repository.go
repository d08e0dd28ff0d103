package actorrepo

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/actor"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormActorRepository implements ActorRepository using GORM.
type GormActorRepository struct {
	db *gorm.DB
}

// NewGormActorRepository creates a new GORM actor directory repository.
func NewGormActorRepository(db *gorm.DB) *GormActorRepository {
	return &GormActorRepository{db: db}
}

// Add saves a directory entry. Not part of the ActorRepository port; the
// workflow never writes actors. Used by directory seeding and tests.
func (r *GormActorRepository) Add(ctx context.Context, entity *actor.Actor) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an actor by ID.
func (r *GormActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByRole retrieves all actors holding the given role, ordered by name.
func (r *GormActorRepository) GetAllByRole(ctx context.Context, role actor.Role) ([]*actor.Actor, error) {
	if err := role.Validate(); err != nil {
		return nil, err
	}

	var dtos []ActorDTO
	if err := r.db.WithContext(ctx).
		Order("name").
		Find(&dtos, "role = ?", int(role)).Error; err != nil {
		return nil, err
	}

	actors := make([]*actor.Actor, 0, len(dtos))
	for _, dto := range dtos {
		entity, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		actors = append(actors, entity)
	}

	return actors, nil
}
