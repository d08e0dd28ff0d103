package services_test

import (
	"testing"

	"supplychain/internal/core/domain/model/actor"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustActor(t *testing.T, name string, role actor.Role) *actor.Actor {
	t.Helper()

	a, err := actor.NewActor(kernel.NewUUID(), name, name+"@example.com", role)
	require.NoError(t, err)

	return a
}

func mustOrder(t *testing.T, origin, manufacturer *actor.Actor) *order.Order {
	t.Helper()

	o, err := order.NewOrder(kernel.NewUUID(), "PRD-1001", 10, origin, manufacturer)
	require.NoError(t, err)

	return o
}

func TestAccessGuard_Authorize(t *testing.T) {
	guard := services.NewAccessGuard()

	origin := mustActor(t, "buyer", actor.RoleOrderingParty)
	manufacturer := mustActor(t, "factory", actor.RoleManufacturer)

	t.Run("custodian is authorized", func(t *testing.T) {
		// Given: a freshly created order held by the manufacturer
		o := mustOrder(t, origin, manufacturer)

		// When/Then: the custodian passes the guard
		assert.NoError(t, guard.Authorize(o, manufacturer))
	})

	t.Run("non-custodian is rejected", func(t *testing.T) {
		o := mustOrder(t, origin, manufacturer)

		err := guard.Authorize(o, origin)
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrNotCustodian)
	})

	t.Run("admin bypasses the custody check", func(t *testing.T) {
		o := mustOrder(t, origin, manufacturer)
		admin := mustActor(t, "admin", actor.RoleAdmin)

		assert.NoError(t, guard.Authorize(o, admin))
	})

	t.Run("authorization follows custody transfers", func(t *testing.T) {
		o := mustOrder(t, origin, manufacturer)
		carrier := mustActor(t, "carrier", actor.RoleLogistics)

		require.NoError(t, o.Transition(order.Accepted, nil, manufacturer, ""))
		require.NoError(t, o.Transition(order.Shipped, carrier, manufacturer, ""))

		// Custody moved to the carrier; the manufacturer is no longer allowed
		assert.NoError(t, guard.Authorize(o, carrier))
		assert.ErrorIs(t, guard.Authorize(o, manufacturer), services.ErrNotCustodian)
	})

	t.Run("identity is compared by ID", func(t *testing.T) {
		o := mustOrder(t, origin, manufacturer)

		// Same name and role, different identity
		impostor := mustActor(t, "factory", actor.RoleManufacturer)

		assert.ErrorIs(t, guard.Authorize(o, impostor), services.ErrNotCustodian)
	})

	t.Run("rejects unconstructed arguments", func(t *testing.T) {
		o := mustOrder(t, origin, manufacturer)

		assert.ErrorIs(t, guard.Authorize(&order.Order{}, manufacturer), order.ErrOrderIsNotConstructed)
		assert.ErrorIs(t, guard.Authorize(o, &actor.Actor{}), actor.ErrActorIsNotConstructed)
		assert.Error(t, guard.Authorize(nil, manufacturer))
		assert.Error(t, guard.Authorize(o, nil))
	})
}
