package commands

import (
	"context"

	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// TakeOrderCommandHandler handles driver claims on orders.
//
// Only drivers may claim, each order is claimed at most once, and the first
// driver wins; the order row is locked so two racing drivers serialize and the
// loser gets a conflict instead of silently stealing the assignment.
type TakeOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	bus        ports.EventBus
}

// NewTakeOrderCommandHandler creates a handler for order claim operations.
func NewTakeOrderCommandHandler(uowFactory OrderUoWFactory, bus ports.EventBus) TakeOrderCommandHandler {
	return TakeOrderCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
	}
}

// Handle processes the claim command. The claim does not change the order's
// status. After a successful commit the new driver binding is announced on the
// order-updates topic.
func (h TakeOrderCommandHandler) Handle(ctx context.Context, cmd TakeOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Actor().Role() != user.Driver {
		return errs.NewForbiddenError("only drivers can take orders")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return wrapInfra("could not take order", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existingOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return wrapInfra("could not take order", err)
	}

	restaurant, err := uow.CatalogRepository().GetRestaurant(ctx, existingOrder.RestaurantID())
	if err != nil {
		return wrapInfra("could not take order", err)
	}

	if err = existingOrder.AssignDriver(cmd.Actor().ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, existingOrder); err != nil {
		return wrapInfra("could not take order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return wrapInfra("could not take order", err)
	}

	h.bus.Publish(ctx, ports.TopicOrderUpdates, ports.OrderEvent{
		Order:             existingOrder,
		RestaurantOwnerID: restaurant.OwnerID(),
	})

	return nil
}
