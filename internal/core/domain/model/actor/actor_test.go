package actor_test

import (
	"testing"

	"supplychain/internal/core/domain/model/actor"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("creates valid actor", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := actor.NewActor(id, "Acme Manufacturing", "ops@acme.example", actor.RoleManufacturer)

		require.NoError(t, err)
		assert.True(t, a.ID().IsEqual(id))
		assert.Equal(t, "Acme Manufacturing", a.Name())
		assert.Equal(t, "ops@acme.example", a.Email())
		assert.Equal(t, actor.RoleManufacturer, a.Role())
		assert.NoError(t, a.Validate())
	})

	t.Run("rejects zero value id", func(t *testing.T) {
		var id kernel.UUID

		_, err := actor.NewActor(id, "Acme", "ops@acme.example", actor.RoleManufacturer)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := actor.NewActor(kernel.NewUUID(), "", "ops@acme.example", actor.RoleSupplier)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty email", func(t *testing.T) {
		_, err := actor.NewActor(kernel.NewUUID(), "Acme", "", actor.RoleSupplier)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := actor.NewActor(kernel.NewUUID(), "Acme", "ops@acme.example", actor.RoleUnknown)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestActor_Validate(t *testing.T) {
	t.Run("zero value actor is not constructed", func(t *testing.T) {
		var a actor.Actor

		err := a.Validate()

		require.Error(t, err)
		assert.Equal(t, actor.ErrActorIsNotConstructed, err)
	})

	t.Run("nil actor is not constructed", func(t *testing.T) {
		var a *actor.Actor

		err := a.Validate()

		require.Error(t, err)
	})
}

func TestActor_IsEqual(t *testing.T) {
	t.Run("actors with same id are equal", func(t *testing.T) {
		id := kernel.NewUUID()
		a1, err := actor.NewActor(id, "Acme", "ops@acme.example", actor.RoleManufacturer)
		require.NoError(t, err)
		a2, err := actor.NewActor(id, "Acme Renamed", "new@acme.example", actor.RoleManufacturer)
		require.NoError(t, err)

		assert.True(t, a1.IsEqual(a2))
	})

	t.Run("actors with different ids are not equal", func(t *testing.T) {
		a1, err := actor.NewActor(kernel.NewUUID(), "Acme", "ops@acme.example", actor.RoleManufacturer)
		require.NoError(t, err)
		a2, err := actor.NewActor(kernel.NewUUID(), "Acme", "ops@acme.example", actor.RoleManufacturer)
		require.NoError(t, err)

		assert.False(t, a1.IsEqual(a2))
		assert.False(t, a1.IsEqual(nil))
	})
}

func TestActor_IsAdmin(t *testing.T) {
	admin, err := actor.NewActor(kernel.NewUUID(), "Operator", "admin@example.com", actor.RoleAdmin)
	require.NoError(t, err)
	supplier, err := actor.NewActor(kernel.NewUUID(), "Parts Inc", "sales@parts.example", actor.RoleSupplier)
	require.NoError(t, err)

	assert.True(t, admin.IsAdmin())
	assert.False(t, supplier.IsAdmin())
}

func TestRole_Validate(t *testing.T) {
	t.Run("valid roles pass validation", func(t *testing.T) {
		validRoles := []actor.Role{
			actor.RoleOrderingParty,
			actor.RoleManufacturer,
			actor.RoleSupplier,
			actor.RoleLogistics,
			actor.RoleAdmin,
		}

		for _, role := range validRoles {
			assert.NoError(t, role.Validate(), "role %s should be valid", role)
		}
	})

	t.Run("invalid roles fail validation", func(t *testing.T) {
		invalidRoles := []actor.Role{
			actor.RoleUnknown,
			actor.Role(99),
			actor.Role(-1),
		}

		for _, role := range invalidRoles {
			assert.Error(t, role.Validate(), "role %d should be invalid", role)
		}
	})
}

func TestRole_String(t *testing.T) {
	testCases := []struct {
		role     actor.Role
		expected string
	}{
		{actor.RoleUnknown, "Unknown"},
		{actor.RoleOrderingParty, "OrderingParty"},
		{actor.RoleManufacturer, "Manufacturer"},
		{actor.RoleSupplier, "Supplier"},
		{actor.RoleLogistics, "Logistics"},
		{actor.RoleAdmin, "Admin"},
		{actor.Role(42), "Unknown"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.role.String())
	}
}

func TestRoleFromString(t *testing.T) {
	t.Run("parses valid role names", func(t *testing.T) {
		role, err := actor.RoleFromString("Logistics")
		require.NoError(t, err)
		assert.Equal(t, actor.RoleLogistics, role)
	})

	t.Run("rejects unknown role names", func(t *testing.T) {
		_, err := actor.RoleFromString("Courier")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRole_CanTakeCustody(t *testing.T) {
	testCases := []struct {
		role     actor.Role
		eligible bool
	}{
		{actor.RoleSupplier, true},
		{actor.RoleLogistics, true},
		{actor.RoleManufacturer, false},
		{actor.RoleOrderingParty, false},
		{actor.RoleAdmin, false},
		{actor.RoleUnknown, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.eligible, tc.role.CanTakeCustody(), "role %s", tc.role)
	}
}
