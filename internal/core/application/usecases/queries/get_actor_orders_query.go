package queries

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrGetActorOrdersQueryIsNotConstructed = errors.New(
	"GetActorOrdersQuery must be created via NewGetActorOrdersQuery constructor",
)

// OrderRelation selects which side of the workflow an actor's order list
// should cover.
type OrderRelation int

const (
	// RelationUnknown is the invalid zero value.
	RelationUnknown OrderRelation = iota

	// RelationMade lists orders the actor created.
	RelationMade

	// RelationReceived lists orders the actor currently holds custody of.
	RelationReceived
)

// Validate checks that the relation is one of the defined values.
func (r OrderRelation) Validate() error {
	switch r {
	case RelationMade, RelationReceived:
		return nil
	case RelationUnknown:
	}

	return errs.NewValueIsInvalidErrorWithCause("relation", fmt.Errorf("%d is not a known relation", r))
}

// GetActorOrdersQuery retrieves the orders an actor is involved in, either as
// the ordering party (made) or as the current custodian (received).
//
// Example:
//
//	query, err := NewGetActorOrdersQuery(actorID, RelationReceived)
//	if err != nil {
//	    return fmt.Errorf("invalid request: %w", err)
//	}
//
//	handler := NewGetActorOrdersQueryHandler(db)
//	inbox, err := handler.Handle(ctx, query)
type GetActorOrdersQuery struct { //nolint:recvcheck //using for validation
	actorID  kernel.UUID
	relation OrderRelation

	guard guard.ConstructorGuard
}

// NewGetActorOrdersQuery creates a query listing an actor's orders.
func NewGetActorOrdersQuery(actorID kernel.UUID, relation OrderRelation) (GetActorOrdersQuery, error) {
	if err := errors.Join(actorID.Validate(), relation.Validate()); err != nil {
		return GetActorOrdersQuery{}, err
	}

	return GetActorOrdersQuery{
		actorID:  actorID,
		relation: relation,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetActorOrdersQueryIsNotConstructed if validation fails.
func (q GetActorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActorOrdersQueryIsNotConstructed)
}

// ActorID returns the actor ID from the query.
func (q GetActorOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Relation returns which side of the workflow the query covers.
func (q GetActorOrdersQuery) Relation() OrderRelation {
	return q.relation
}
