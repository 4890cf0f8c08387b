package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/payload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("keeps status and text only", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(orderID, payload.Payload{
			"status":   "shipped",
			"text":     "ring twice",
			"price":    0,
			"customer": kernel.NewUUID().String(),
		})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(orderID))
		require.NotNil(t, cmd.Changes().Status)
		require.NotNil(t, cmd.Changes().Text)
		assert.Equal(t, order.Shipped, *cmd.Changes().Status)
		assert.Equal(t, "ring twice", *cmd.Changes().Text)
	})

	t.Run("unknown fields only", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(orderID, payload.Payload{"price": 10})

		require.NoError(t, err)
		assert.True(t, cmd.Changes().IsEmpty())
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(orderID, payload.Payload{"status": "teleported"})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("text must be a string", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(orderID, payload.Payload{"text": 42.0})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("missing order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(kernel.UUID{}, payload.Payload{"text": "x"})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value", func(t *testing.T) {
		require.ErrorIs(t, commands.UpdateOrderCommand{}.Validate(), commands.ErrUpdateOrderCommandIsNotConstructed)
	})
}
