package services

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/actor"
	"supplychain/internal/core/domain/model/order"
)

// ErrNotCustodian is returned when an actor attempts to act on an order whose
// custody they do not hold. Only the current custodian, or an administrator,
// may drive an order through its workflow.
var ErrNotCustodian = errors.New("actor is not the order custodian")

// AccessGuard is a domain service that decides whether an actor is allowed to
// act on an order. The check runs before any transition rule is evaluated, so
// an unauthorized caller learns nothing about which transitions would have
// been valid.
//
// Business rules:
//   - The current custodian may act on the order
//   - Administrators may act on any order
//   - Identity is compared by actor ID, never by name or email
type AccessGuard struct{}

// NewAccessGuard creates a new AccessGuard instance.
func NewAccessGuard() *AccessGuard {
	return &AccessGuard{}
}

// Authorize checks whether acting may operate on the given order.
// Returns ErrNotCustodian when the actor neither holds custody nor is an
// administrator, or a validation error for improperly constructed arguments.
func (g *AccessGuard) Authorize(o *order.Order, acting *actor.Actor) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := acting.Validate(); err != nil {
		return err
	}

	if acting.IsAdmin() {
		return nil
	}

	if !o.CustodianID().IsEqual(acting.ID()) {
		return fmt.Errorf("%w: order %s is held by %s", ErrNotCustodian, o.ID(), o.CustodianID())
	}

	return nil
}
