package order

import (
	"errors"
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/actor"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder factory method. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a purchase order in the custody workflow. It is the aggregate
// root that manages the order lifecycle from creation through acceptance,
// shipping, and delivery to completion or rejection.
//
// Order follows these invariants:
//   - At every point in time it has exactly one status and exactly one custodian
//   - Status and custodian change only together, through Transition
//   - The origin actor is fixed for the life of the order
//   - Every applied transition produces exactly one Event
//   - Orders in a terminal status (Rejected, Completed) never change again
//   - Can only be created through the NewOrder constructor
//
// The version field supports optimistic concurrency: it counts applied
// transitions (creation included), and persistence rejects a write whose
// expected version does not match the stored row.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// productRef references the ordered product; opaque to the workflow
	productRef string

	// quantity is the ordered amount; opaque to the workflow
	quantity int

	// originID identifies the actor that created the order; fixed for life
	originID kernel.UUID

	// custodianID identifies the actor currently authorized to act on the order
	custodianID kernel.UUID

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the immutable creation timestamp
	createdAt time.Time

	// version counts applied transitions, creation included
	version int

	// pendingEvents holds audit records produced since the aggregate was
	// constructed or restored, awaiting persistence
	pendingEvents []Event

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order. Creation is the degenerate first transition of
// the workflow: the order starts in Pending with custody held by the target
// manufacturer, and one creation Event is recorded.
//
// Parameters:
//   - id: unique identifier for the order
//   - productRef: reference to the ordered product (must be non-empty)
//   - quantity: ordered amount (must be positive)
//   - origin: the actor placing the order
//   - manufacturer: the actor the order is addressed to; must hold the
//     manufacturer role and becomes the initial custodian
//
// Returns a validation error if any parameter is invalid, or
// ErrCustodianRoleNotEligible if the target is not a manufacturer.
func NewOrder(id kernel.UUID, productRef string, quantity int, origin *actor.Actor, manufacturer *actor.Actor) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductRef(productRef),
		o.setQuantity(quantity),
		origin.Validate(),
		manufacturer.Validate(),
	); err != nil {
		return nil, err
	}

	if manufacturer.Role() != actor.RoleManufacturer {
		return nil, fmt.Errorf("%w: %s cannot receive orders", ErrCustodianRoleNotEligible, manufacturer.Role())
	}

	o.originID = origin.ID()
	o.custodianID = manufacturer.ID()
	o.createdAt = time.Now().UTC()
	o.version = 1

	o.pendingEvents = append(o.pendingEvents, newEvent(
		o.id,
		o.version,
		o.createdAt,
		origin.ID(),
		Unknown,
		Pending,
		manufacturer.ID(),
		manufacturer.ID(),
		fmt.Sprintf("Order created by %s", origin.Name()),
	))

	return o, nil
}

// RestoreOrder reconstructs an order from persistence.
// No event is produced; pending events start empty.
func RestoreOrder(
	id kernel.UUID,
	productRef string,
	quantity int,
	originID kernel.UUID,
	custodianID kernel.UUID,
	status Status,
	createdAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setProductRef(productRef),
		o.setQuantity(quantity),
		originID.Validate(),
		custodianID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	o.originID = originID
	o.custodianID = custodianID
	o.status = status
	o.createdAt = createdAt
	o.version = version

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder
// or RestoreOrder. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ProductRef returns the reference to the ordered product.
func (o *Order) ProductRef() string {
	return o.productRef
}

// Quantity returns the ordered amount.
func (o *Order) Quantity() int {
	return o.quantity
}

// OriginID returns the identifier of the actor that created the order.
func (o *Order) OriginID() kernel.UUID {
	return o.originID
}

// CustodianID returns the identifier of the actor currently holding custody.
func (o *Order) CustodianID() kernel.UUID {
	return o.custodianID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version returns the number of transitions applied to the order, creation
// included. Persistence uses it as the optimistic-concurrency token.
func (o *Order) Version() int {
	return o.version
}

// PendingEvents returns the audit records produced by transitions applied to
// this in-memory instance, in application order. The persistence layer appends
// them in the same transaction that writes the order row.
func (o *Order) PendingEvents() []Event {
	return o.pendingEvents
}

// Transition applies a requested status change, transferring custody when the
// target status demands it. Status and custodian always change together as a
// single unit, and exactly one Event is recorded per successful call.
//
// Rules enforced, in order:
//   - the order must not be in a terminal status (ErrOrderTerminal)
//   - the requested status must be reachable in one step (ErrInvalidTransition)
//   - Shipped and Delivered require a new custodian whose role may take
//     custody (ErrInvalidTransition / ErrCustodianRoleNotEligible);
//     every other step must not name one (ErrInvalidTransition)
//
// Authorization is not checked here; the access guard runs before any
// transition is attempted. actedBy is recorded in the audit trail.
// If description is empty a summary is composed from the change.
func (o *Order) Transition(requested Status, newCustodian *actor.Actor, actedBy *actor.Actor, description string) error {
	if err := actedBy.Validate(); err != nil {
		return err
	}

	if o.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrOrderTerminal, o.status)
	}

	if err := requested.Validate(); err != nil {
		return err
	}

	if !o.status.CanTransitionTo(requested) {
		return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, o.status, requested)
	}

	toCustodianID := o.custodianID
	if requested.RequiresCustodyTransfer() {
		if newCustodian == nil {
			return fmt.Errorf("%w: %s requires a new custodian", ErrInvalidTransition, requested)
		}
		if err := newCustodian.Validate(); err != nil {
			return err
		}
		if !newCustodian.Role().CanTakeCustody() {
			return fmt.Errorf("%w: %s cannot take custody on %s", ErrCustodianRoleNotEligible, newCustodian.Role(), requested)
		}
		toCustodianID = newCustodian.ID()
	} else if newCustodian != nil {
		return fmt.Errorf("%w: %s does not transfer custody", ErrInvalidTransition, requested)
	}

	if description == "" {
		description = fmt.Sprintf("Status changed from %s to %s", o.status, requested)
		if requested.RequiresCustodyTransfer() {
			description = fmt.Sprintf("%s; custody transferred to %s", description, newCustodian.Name())
		}
	}

	event := newEvent(
		o.id,
		o.version+1,
		time.Now().UTC(),
		actedBy.ID(),
		o.status,
		requested,
		o.custodianID,
		toCustodianID,
		description,
	)

	o.status = requested
	o.custodianID = toCustodianID
	o.version++
	o.pendingEvents = append(o.pendingEvents, event)

	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setProductRef validates and sets the ordered product reference.
// This is a private method used only during construction.
func (o *Order) setProductRef(productRef string) error {
	if productRef == "" {
		return errs.NewValueIsRequiredError("productRef")
	}
	o.productRef = productRef
	return nil
}

// setQuantity validates and sets the ordered amount.
// Quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}
