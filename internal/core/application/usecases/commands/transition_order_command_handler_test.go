package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/actor"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/services"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingOrderForTest(t *testing.T, origin, manufacturer *actor.Actor) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "PRD-1001", 25, origin, manufacturer)
	require.NoError(t, err)

	return o
}

func TestNewTransitionOrderCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockUoWFactory)

	// Act
	handler := commands.NewTransitionOrderCommandHandler(mockFactory)

	// Assert
	assert.NotNil(t, handler)
}

func TestTransitionOrderCommandHandler_Handle_AcceptSuccess(t *testing.T) {
	// Arrange
	ctx := context.Background()
	origin := newActorForTest(t, "buyer", actor.RoleOrderingParty)
	manufacturer := newActorForTest(t, "factory", actor.RoleManufacturer)
	pending := newPendingOrderForTest(t, origin, manufacturer)

	cmd, err := commands.NewTransitionOrderCommand(pending.ID(), order.Accepted, nil, manufacturer.ID(), "")
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockEventRepo := new(MockOrderEventRepository)
	mockActorRepo := new(MockActorRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockUoW.On("ActorRepository").Return(mockActorRepo).Once(),
		mockActorRepo.On("Get", ctx, manufacturer.ID()).Return(manufacturer, nil).Once(),
		mockOrderRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		mockOrderRepo.On("Update", ctx, pending).Return(nil).Once(),
		mockUoW.On("OrderEventRepository").Return(mockEventRepo).Once(),
		mockEventRepo.On("Add", ctx, mock.AnythingOfType("[]order.Event")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewTransitionOrderCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, order.Accepted, updated.Status())
	assert.True(t, manufacturer.ID().IsEqual(updated.CustodianID()))

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockActorRepo.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
	mockEventRepo.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_ShipResolvesCustodian(t *testing.T) {
	// Arrange
	ctx := context.Background()
	origin := newActorForTest(t, "buyer", actor.RoleOrderingParty)
	manufacturer := newActorForTest(t, "factory", actor.RoleManufacturer)
	carrier := newActorForTest(t, "carrier", actor.RoleLogistics)

	accepted := newPendingOrderForTest(t, origin, manufacturer)
	require.NoError(t, accepted.Transition(order.Accepted, nil, manufacturer, ""))

	carrierID := carrier.ID()
	cmd, err := commands.NewTransitionOrderCommand(accepted.ID(), order.Shipped, &carrierID, manufacturer.ID(), "")
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockEventRepo := new(MockOrderEventRepository)
	mockActorRepo := new(MockActorRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("OrderRepository").Return(mockOrderRepo).Once(),
		mockUoW.On("ActorRepository").Return(mockActorRepo).Once(),
		mockActorRepo.On("Get", ctx, manufacturer.ID()).Return(manufacturer, nil).Once(),
		mockOrderRepo.On("Get", ctx, accepted.ID()).Return(accepted, nil).Once(),
		mockActorRepo.On("Get", ctx, carrier.ID()).Return(carrier, nil).Once(),
		mockOrderRepo.On("Update", ctx, accepted).Return(nil).Once(),
		mockUoW.On("OrderEventRepository").Return(mockEventRepo).Once(),
		mockEventRepo.On("Add", ctx, mock.AnythingOfType("[]order.Event")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewTransitionOrderCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, order.Shipped, updated.Status())
	assert.True(t, carrier.ID().IsEqual(updated.CustodianID()))
	mockUoW.AssertExpectations(t)
	mockActorRepo.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_NotCustodian(t *testing.T) {
	// Arrange
	ctx := context.Background()
	origin := newActorForTest(t, "buyer", actor.RoleOrderingParty)
	manufacturer := newActorForTest(t, "factory", actor.RoleManufacturer)
	pending := newPendingOrderForTest(t, origin, manufacturer)

	cmd, err := commands.NewTransitionOrderCommand(pending.ID(), order.Accepted, nil, origin.ID(), "")
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockActorRepo := new(MockActorRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockUoW.On("ActorRepository").Return(mockActorRepo).Once()
	mockActorRepo.On("Get", ctx, origin.ID()).Return(origin, nil).Once()
	mockOrderRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewTransitionOrderCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, services.ErrNotCustodian)
	assert.Equal(t, order.Pending, pending.Status(), "rejected request must not mutate the aggregate")
	mockOrderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockUoW.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_InvalidTransition(t *testing.T) {
	// Arrange
	ctx := context.Background()
	origin := newActorForTest(t, "buyer", actor.RoleOrderingParty)
	manufacturer := newActorForTest(t, "factory", actor.RoleManufacturer)
	pending := newPendingOrderForTest(t, origin, manufacturer)

	cmd, err := commands.NewTransitionOrderCommand(pending.ID(), order.Completed, nil, manufacturer.ID(), "")
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockActorRepo := new(MockActorRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockUoW.On("ActorRepository").Return(mockActorRepo).Once()
	mockActorRepo.On("Get", ctx, manufacturer.ID()).Return(manufacturer, nil).Once()
	mockOrderRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewTransitionOrderCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, order.ErrInvalidTransition)
	mockOrderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestTransitionOrderCommandHandler_Handle_TerminalOrder(t *testing.T) {
	// Arrange
	ctx := context.Background()
	origin := newActorForTest(t, "buyer", actor.RoleOrderingParty)
	manufacturer := newActorForTest(t, "factory", actor.RoleManufacturer)

	rejected := newPendingOrderForTest(t, origin, manufacturer)
	require.NoError(t, rejected.Transition(order.Rejected, nil, manufacturer, "out of stock"))

	cmd, err := commands.NewTransitionOrderCommand(rejected.ID(), order.Accepted, nil, manufacturer.ID(), "")
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockActorRepo := new(MockActorRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockUoW.On("ActorRepository").Return(mockActorRepo).Once()
	mockActorRepo.On("Get", ctx, manufacturer.ID()).Return(manufacturer, nil).Once()
	mockOrderRepo.On("Get", ctx, rejected.ID()).Return(rejected, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewTransitionOrderCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, order.ErrOrderTerminal)
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestTransitionOrderCommandHandler_Handle_VersionConflict(t *testing.T) {
	// Arrange: the stored order moved to Accepted after our copy was loaded
	ctx := context.Background()
	origin := newActorForTest(t, "buyer", actor.RoleOrderingParty)
	manufacturer := newActorForTest(t, "factory", actor.RoleManufacturer)

	loaded := newPendingOrderForTest(t, origin, manufacturer)
	winner, err := order.RestoreOrder(
		loaded.ID(), loaded.ProductRef(), loaded.Quantity(),
		origin.ID(), manufacturer.ID(),
		order.Accepted, time.Now().UTC(), 2,
	)
	require.NoError(t, err)

	cmd, err := commands.NewTransitionOrderCommand(loaded.ID(), order.Rejected, nil, manufacturer.ID(), "")
	require.NoError(t, err)

	mockOrderRepo := new(MockOrderRepository)
	mockActorRepo := new(MockActorRepository)
	mockUoW := new(MockUoW)
	mockFactory := new(MockUoWFactory)

	mockFactory.On("Create").Return(mockUoW).Once()
	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("OrderRepository").Return(mockOrderRepo).Once()
	mockUoW.On("ActorRepository").Return(mockActorRepo).Once()
	mockActorRepo.On("Get", ctx, manufacturer.ID()).Return(manufacturer, nil).Once()
	mockOrderRepo.On("Get", ctx, loaded.ID()).Return(loaded, nil).Once()
	mockOrderRepo.On("Update", ctx, loaded).
		Return(errs.NewVersionConflictError("order", loaded.ID())).Once()
	mockOrderRepo.On("Get", ctx, loaded.ID()).Return(winner, nil).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewTransitionOrderCommandHandler(mockFactory)

	// Act
	updated, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Nil(t, updated)
	assert.ErrorIs(t, err, commands.ErrTransitionConflict)

	var conflictErr *commands.TransitionConflictError
	require.True(t, errors.As(err, &conflictErr))
	assert.True(t, loaded.ID().IsEqual(conflictErr.OrderID))
	assert.Equal(t, order.Accepted, conflictErr.CurrentStatus)

	mockUoW.AssertNotCalled(t, "Commit", ctx)
	mockUoW.AssertExpectations(t)
	mockOrderRepo.AssertExpectations(t)
}
