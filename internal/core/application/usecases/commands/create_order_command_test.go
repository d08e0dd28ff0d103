package commands_test

import (
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	originID := kernel.NewUUID()
	manufacturerID := kernel.NewUUID()

	t.Run("creates valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand("PRD-1001", 25, originID, manufacturerID)

		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.NoError(t, cmd.OrderID().Validate())
		assert.Equal(t, "PRD-1001", cmd.ProductRef())
		assert.Equal(t, 25, cmd.Quantity())
		assert.Equal(t, originID, cmd.OriginID())
		assert.Equal(t, manufacturerID, cmd.ManufacturerID())
	})

	t.Run("generates a fresh order ID per command", func(t *testing.T) {
		first, err := commands.NewCreateOrderCommand("PRD-1001", 1, originID, manufacturerID)
		require.NoError(t, err)
		second, err := commands.NewCreateOrderCommand("PRD-1001", 1, originID, manufacturerID)
		require.NoError(t, err)

		assert.False(t, first.OrderID().IsEqual(second.OrderID()))
	})

	t.Run("rejects empty product reference", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("", 25, originID, manufacturerID)

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrProductRefIsRequired)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -5} {
			_, err := commands.NewCreateOrderCommand("PRD-1001", quantity, originID, manufacturerID)

			require.Error(t, err)
			assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
		}
	})

	t.Run("rejects invalid actor identifiers", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand("PRD-1001", 25, kernel.UUID{}, manufacturerID)
		assert.Error(t, err)

		_, err = commands.NewCreateOrderCommand("PRD-1001", 25, originID, kernel.UUID{})
		assert.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
