package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/actor"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrGetActorsQueryIsNotConstructed = errors.New(
	"GetActorsQuery must be created via NewGetActorsQuery constructor",
)

// GetActorsQuery lists actors from the directory, optionally filtered by role.
// The dashboard uses the role filter to offer eligible custodians when
// shipping or delivering an order.
//
// Example:
//
//	query, err := NewGetActorsQueryWithRole(actor.RoleLogistics)
//	if err != nil {
//	    return fmt.Errorf("invalid role: %w", err)
//	}
//
//	handler := NewGetActorsQueryHandler(db)
//	carriers, err := handler.Handle(ctx, query)
type GetActorsQuery struct { //nolint:recvcheck //using for validation
	role *actor.Role

	guard guard.ConstructorGuard
}

// NewGetActorsQuery creates a query listing every actor in the directory.
func NewGetActorsQuery() GetActorsQuery {
	return GetActorsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetActorsQueryWithRole creates a query listing actors holding one role.
func NewGetActorsQueryWithRole(role actor.Role) (GetActorsQuery, error) {
	if err := role.Validate(); err != nil {
		return GetActorsQuery{}, err
	}

	return GetActorsQuery{
		role:  &role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
// Returns ErrGetActorsQueryIsNotConstructed if validation fails.
func (q GetActorsQuery) Validate() error {
	return q.guard.Validate(ErrGetActorsQueryIsNotConstructed)
}

// Role returns the role filter, or nil when the query lists all actors.
func (q GetActorsQuery) Role() *actor.Role {
	return q.role
}

// ActorResponse is the read model of one directory entry.
type ActorResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
	Role  actor.Role
}
