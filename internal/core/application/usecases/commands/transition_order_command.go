package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to move an order to a new status,
// transferring custody when the target status demands it. The acting actor is
// checked against the order's current custodian before any rule is evaluated.
//
// Example:
//
//	custodian := carrierID
//	cmd, err := NewTransitionOrderCommand(orderID, order.Shipped, &custodian, factoryID, "")
//	if err != nil {
//	    return fmt.Errorf("invalid transition request: %w", err)
//	}
//
//	handler := NewTransitionOrderCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	requested      order.Status
	newCustodianID *kernel.UUID
	actorID        kernel.UUID
	description    string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to transition an order.
// newCustodianID is required by Shipped and Delivered and must be nil
// otherwise; the aggregate enforces that rule, the command only validates
// that whatever is supplied is well formed. description may be empty.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	requested order.Status,
	newCustodianID *kernel.UUID,
	actorID kernel.UUID,
	description string,
) (TransitionOrderCommand, error) {
	command := TransitionOrderCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRequested(requested),
		command.setNewCustodianID(newCustodianID),
		command.setActorID(actorID),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the target order ID from the command.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Requested returns the requested status from the command.
func (c TransitionOrderCommand) Requested() order.Status {
	return c.requested
}

// NewCustodianID returns the requested custody recipient, or nil when the
// transition keeps custody in place.
func (c TransitionOrderCommand) NewCustodianID() *kernel.UUID {
	return c.newCustodianID
}

// ActorID returns the acting actor ID from the command.
func (c TransitionOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Description returns the optional free-text note for the audit trail.
func (c TransitionOrderCommand) Description() string {
	return c.description
}

func (c *TransitionOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *TransitionOrderCommand) setRequested(requested order.Status) error {
	if err := requested.Validate(); err != nil {
		return err
	}

	c.requested = requested
	return nil
}

func (c *TransitionOrderCommand) setNewCustodianID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return err
	}

	c.newCustodianID = id
	return nil
}

func (c *TransitionOrderCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actorID = id
	return nil
}
