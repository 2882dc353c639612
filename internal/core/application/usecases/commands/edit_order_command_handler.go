package commands

import (
	"context"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// EditOrderCommandHandler handles status changes on existing orders.
//
// Authorization is layered: the actor must be allowed to see the order at all,
// their role must permit the requested target, and the order's state machine
// must allow the move from its current status. The order row is locked for the
// duration of the transaction so concurrent edits serialize.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	bus        ports.EventBus
	policy     services.AccessPolicy
}

// NewEditOrderCommandHandler creates a handler for order status changes.
func NewEditOrderCommandHandler(uowFactory OrderUoWFactory, bus ports.EventBus) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
		policy:     services.NewAccessPolicy(),
	}
}

// Handle processes the status change command.
//
// An actor who may not see the order gets the same forbidden error as one who
// may see it but lacks the role for the target, so the response does not leak
// whether the order exists behind the denial. After a successful commit the
// change is announced on the order-updates topic; a move to Cooked is
// additionally announced to drivers on the cooked-orders topic.
func (h EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return wrapInfra("could not edit order", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existingOrder, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return wrapInfra("could not edit order", err)
	}

	restaurant, err := uow.CatalogRepository().GetRestaurant(ctx, existingOrder.RestaurantID())
	if err != nil {
		return wrapInfra("could not edit order", err)
	}

	if !h.policy.CanView(cmd.Actor(), existingOrder, restaurant.OwnerID()) {
		return errs.NewForbiddenError("you can't see this order")
	}
	if !h.policy.CanTransition(cmd.Actor().Role(), cmd.Target()) {
		return errs.NewForbiddenError("you can't edit this order")
	}

	if err = existingOrder.ChangeStatus(cmd.Target()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, existingOrder); err != nil {
		return wrapInfra("could not edit order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return wrapInfra("could not edit order", err)
	}

	event := ports.OrderEvent{
		Order:             existingOrder,
		RestaurantOwnerID: restaurant.OwnerID(),
	}

	if cmd.Target() == order.Cooked {
		h.bus.Publish(ctx, ports.TopicCookedOrders, event)
	}
	h.bus.Publish(ctx, ports.TopicOrderUpdates, event)

	return nil
}
