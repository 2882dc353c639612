package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand represents an actor's request to move an order to a new
// status. The actor's role decides which targets are permitted; the order's
// current status decides which targets are reachable.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   user.User
	target  order.Status

	guard guard.ConstructorGuard
}

// NewEditOrderCommand creates a command to change an order's status.
// Validates the order identifier, the actor, and the target status.
func NewEditOrderCommand(orderID kernel.UUID, actor user.User, target order.Status) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setTarget(target),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditOrderCommandIsNotConstructed if validation fails.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being edited.
func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the authenticated user requesting the change.
func (c EditOrderCommand) Actor() user.User {
	return c.actor
}

// Target returns the requested destination status.
func (c EditOrderCommand) Target() order.Status {
	return c.target
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setActor(actor user.User) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *EditOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
