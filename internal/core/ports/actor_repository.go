package ports

import (
	"context"

	"supplychain/internal/core/domain/model/actor"
	"supplychain/internal/core/domain/model/kernel"
)

// ActorRepository defines the read-only contract for the actor directory.
// Actors are reference data maintained outside the order workflow; the
// workflow resolves them by identifier or role and never writes them.
type ActorRepository interface {
	// Get retrieves an actor by its unique identifier.
	// Returns errs.ErrObjectNotFound when no actor has the identifier.
	Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error)

	// GetAllByRole retrieves all actors holding the given role,
	// ordered by name.
	GetAllByRole(ctx context.Context, role actor.Role) ([]*actor.Actor, error)
}
