package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actor := mustUser(t, user.Owner)

	cmd, err := commands.NewEditOrderCommand(orderID, actor, order.Cooking)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, actor, cmd.Actor())
	assert.Equal(t, order.Cooking, cmd.Target())
}

func TestNewEditOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewEditOrderCommand(kernel.UUID{}, mustUser(t, user.Owner), order.Cooking)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewEditOrderCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewEditOrderCommand(kernel.NewUUID(), user.User{}, order.Cooking)
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrUserIsNotConstructed)
}

func TestNewEditOrderCommand_InvalidTarget(t *testing.T) {
	_, err := commands.NewEditOrderCommand(kernel.NewUUID(), mustUser(t, user.Owner), order.Unknown)
	require.Error(t, err)
}

func TestEditOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.EditOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEditOrderCommandIsNotConstructed)
}
