package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrTakeOrderCommandIsNotConstructed = errors.New(
	"TakeOrderCommand must be created via NewTakeOrderCommand constructor",
)

// TakeOrderCommand represents a driver's request to claim an order for
// delivery. Claiming binds the driver to the order without touching its status.
type TakeOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.User

	guard guard.ConstructorGuard
}

// NewTakeOrderCommand creates a command to claim an order.
// Validates the order identifier and the actor.
func NewTakeOrderCommand(orderID kernel.UUID, actor user.User) (TakeOrderCommand, error) {
	cmd := TakeOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return TakeOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTakeOrderCommandIsNotConstructed if validation fails.
func (c TakeOrderCommand) Validate() error {
	return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being claimed.
func (c TakeOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated user claiming the order.
func (c TakeOrderCommand) Actor() user.User {
	return c.actor
}

func (c *TakeOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TakeOrderCommand) setActor(actor user.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}
