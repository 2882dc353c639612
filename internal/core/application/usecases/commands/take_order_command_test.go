package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTakeOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	actor := mustUser(t, user.Driver)

	cmd, err := commands.NewTakeOrderCommand(orderID, actor)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, actor, cmd.Actor())
}

func TestNewTakeOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewTakeOrderCommand(kernel.UUID{}, mustUser(t, user.Driver))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewTakeOrderCommand_InvalidActor(t *testing.T) {
	_, err := commands.NewTakeOrderCommand(kernel.NewUUID(), user.User{})
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrUserIsNotConstructed)
}

func TestTakeOrderCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.TakeOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrTakeOrderCommandIsNotConstructed)
}
