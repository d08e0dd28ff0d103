package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrProductRefIsRequired = errors.New("productRef is required")
	ErrQuantityIsInvalid    = errors.New("quantity must be greater than 0")
)

// CreateOrderCommand represents a request to place a new purchase order with a
// manufacturer. Encapsulates the product details, the ordering party, and the
// manufacturer that will take initial custody.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("PRD-1001", 25, buyerID, factoryID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting acceptance", created.ID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	productRef     string
	quantity       int
	originID       kernel.UUID
	manufacturerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new purchase order.
// Automatically generates a unique ID for the order.
// Validates that the product reference is not empty, the quantity is positive,
// and both actor identifiers are valid.
func NewCreateOrderCommand(productRef string, quantity int, originID, manufacturerID kernel.UUID) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(kernel.NewUUID()),
		command.setProductRef(productRef),
		command.setQuantity(quantity),
		command.setOriginID(originID),
		command.setManufacturerID(manufacturerID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated order ID from the command.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProductRef returns the product reference from the command.
func (c CreateOrderCommand) ProductRef() string {
	return c.productRef
}

// Quantity returns the ordered amount from the command.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// OriginID returns the ordering party ID from the command.
func (c CreateOrderCommand) OriginID() kernel.UUID {
	return c.originID
}

// ManufacturerID returns the target manufacturer ID from the command.
func (c CreateOrderCommand) ManufacturerID() kernel.UUID {
	return c.manufacturerID
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setProductRef(productRef string) error {
	if productRef == "" {
		return ErrProductRefIsRequired
	}

	c.productRef = productRef
	return nil
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setOriginID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.originID = id
	return nil
}

func (c *CreateOrderCommand) setManufacturerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.manufacturerID = id
	return nil
}
