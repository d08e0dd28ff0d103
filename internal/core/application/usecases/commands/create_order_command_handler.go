package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for placing orders.
// Resolves both actors from the directory, creates the order aggregate with
// the manufacturer as initial custodian, and persists the order together with
// its creation event in one transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand("PRD-1001", 25, buyerID, factoryID)
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence operations.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command and returns the created order.
// Returns errs.ErrObjectNotFound when either actor is missing from the
// directory, or order.ErrCustodianRoleNotEligible when the target actor is
// not a manufacturer. Automatically rolls back on any error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actorRepo := uow.ActorRepository()

	origin, err := actorRepo.Get(ctx, cmd.OriginID())
	if err != nil {
		return nil, err
	}

	manufacturer, err := actorRepo.Get(ctx, cmd.ManufacturerID())
	if err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.ProductRef(), cmd.Quantity(), origin, manufacturer)
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.OrderEventRepository().Add(ctx, aggregate.PendingEvents()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
