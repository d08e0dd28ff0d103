// Package actor models the organizations participating in the order workflow:
// ordering parties, manufacturers, suppliers, logistics carriers, and admins.
// Actors are read-only reference data owned by the external directory; the
// workflow only resolves and compares them.
package actor

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// ErrActorIsNotConstructed is returned when an Actor instance was not created through
// the NewActor factory method. This ensures all actors are properly validated.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor represents an organization with an identity in the order workflow.
// It is immutable for the lifetime of any order that references it.
//
// Actor follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-empty display name and contact email
//   - Must have a valid role
//   - Can only be created through the NewActor constructor
type Actor struct {
	// id is the unique identifier for the actor
	id kernel.UUID

	// name is the display name of the organization
	name string

	// email is the contact identifier of the organization
	email string

	// role determines what the actor may do in the workflow
	role Role

	// isConstructed ensures the actor was created via NewActor
	isConstructed bool
}

// NewActor creates a new Actor instance with validation. This is the only way to
// create a valid Actor, ensuring all invariants are maintained.
//
// Returns a validation error if the id is invalid, the name or email is empty,
// or the role is not a valid role.
func NewActor(id kernel.UUID, name string, email string, role Role) (*Actor, error) {
	a := &Actor{
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setEmail(email),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Actor instance was properly constructed through NewActor.
// This prevents bypassing validation by directly instantiating the struct.
func (a *Actor) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActorIsNotConstructed
	}

	return nil
}

// IsEqual compares two actors by their unique identifiers.
// Custody checks rely on this comparison: the identifier is unique and
// immutable, unlike display attributes.
func (a *Actor) IsEqual(other *Actor) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the actor's unique identifier.
func (a *Actor) ID() kernel.UUID {
	return a.id
}

// Name returns the actor's display name.
func (a *Actor) Name() string {
	return a.name
}

// Email returns the actor's contact identifier.
func (a *Actor) Email() string {
	return a.email
}

// Role returns the actor's role in the supply chain.
func (a *Actor) Role() Role {
	return a.role
}

// IsAdmin reports whether the actor holds the admin role.
func (a *Actor) IsAdmin() bool {
	return a.role == RoleAdmin
}

// setID validates and sets the actor's unique identifier.
// This is a private method used only during construction.
func (a *Actor) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

// setName validates and sets the actor's display name.
// This is a private method used only during construction.
func (a *Actor) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

// setEmail validates and sets the actor's contact identifier.
// This is a private method used only during construction.
func (a *Actor) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	a.email = email
	return nil
}

// setRole validates and sets the actor's role.
// This is a private method used only during construction.
func (a *Actor) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
