package commands

import (
	"context"
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/actor"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// ErrTransitionConflict is returned when a concurrent transition won the race
// for the same order version. The losing request was not applied.
var ErrTransitionConflict = errors.New("order was transitioned concurrently")

// TransitionConflictError reports a lost transition race together with the
// order status the winner left behind, so the caller can see what the order
// looks like now without another round trip.
type TransitionConflictError struct {
	OrderID       kernel.UUID
	CurrentStatus order.Status
}

// NewTransitionConflictError creates a conflict error for the given order
// carrying the status observed after the winning transition.
func NewTransitionConflictError(orderID kernel.UUID, currentStatus order.Status) *TransitionConflictError {
	return &TransitionConflictError{
		OrderID:       orderID,
		CurrentStatus: currentStatus,
	}
}

func (e *TransitionConflictError) Error() string {
	return fmt.Sprintf("%s: order %s is now %s", ErrTransitionConflict, e.OrderID, e.CurrentStatus)
}

func (e *TransitionConflictError) Unwrap() error {
	return ErrTransitionConflict
}

// TransitionOrderCommandHandler orchestrates a single order transition.
// Loads the order and the acting actor, runs the access guard, applies the
// transition on the aggregate, and persists the new state together with its
// audit event in one transaction. A version check on the write detects
// concurrent transitions; at most one racing request is ever applied.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, services.ErrNotCustodian):
//	    log.Println("Caller does not hold custody")
//	case errors.Is(err, ErrTransitionConflict):
//	    log.Println("Someone else moved the order first")
//	case err != nil:
//	    log.Printf("Transition failed: %v", err)
//	}
type TransitionOrderCommandHandler struct {
	uowFactory  UoWFactory
	accessGuard *services.AccessGuard
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewTransitionOrderCommandHandler(uowFactory UoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle processes the transition command and returns the updated order.
//
// Error contract, in evaluation order:
//   - errs.ErrObjectNotFound: the order, actor, or new custodian is missing
//   - services.ErrNotCustodian: the actor holds neither custody nor admin rights
//   - order.ErrOrderTerminal / order.ErrInvalidTransition /
//     order.ErrCustodianRoleNotEligible: the aggregate rejected the change
//   - ErrTransitionConflict: a concurrent transition was applied first; the
//     returned *TransitionConflictError carries the status observed after it
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()
	actorRepo := uow.ActorRepository()

	acting, err := actorRepo.Get(ctx, cmd.ActorID())
	if err != nil {
		return nil, err
	}

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = h.accessGuard.Authorize(aggregate, acting); err != nil {
		return nil, err
	}

	var newCustodian *actor.Actor
	if custodianID := cmd.NewCustodianID(); custodianID != nil {
		if newCustodian, err = actorRepo.Get(ctx, *custodianID); err != nil {
			return nil, err
		}
	}

	if err = aggregate.Transition(cmd.Requested(), newCustodian, acting, cmd.Description()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		if errors.Is(err, errs.ErrVersionConflict) {
			return nil, h.conflict(ctx, orderRepo, cmd.OrderID())
		}

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

// conflict re-reads the order to report the status the winning transition
// left behind. When even the re-read fails, the bare sentinel still tells
// the caller the transition was not applied.
func (h *TransitionOrderCommandHandler) conflict(ctx context.Context, orderRepo ports.OrderRepository, orderID kernel.UUID) error {
	current, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return fmt.Errorf("%w: order %s", ErrTransitionConflict, orderID)
	}

	return NewTransitionConflictError(orderID, current.Status())
}
