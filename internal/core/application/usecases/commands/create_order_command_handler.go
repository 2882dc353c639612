package commands

import (
	"context"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the restaurant and dishes from the catalog, prices every item,
// persists the order with all items in one transaction, and announces the new
// pending order to the restaurant's owner.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, bus)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID, restaurantID, selections)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and the owner has been notified
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	bus        ports.EventBus
	pricer     services.Pricer
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence and the event bus
// for the pending-order announcement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, bus ports.EventBus) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		bus:        bus,
		pricer:     services.NewPricer(),
	}
}

// Handle processes the order creation command.
//
// The first missing dish aborts the whole operation with a not-found error and
// nothing is persisted; the order and all its items commit atomically or not at
// all. The pending-order event is published only after the commit succeeds.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return wrapInfra("could not create order", err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalogRepo := uow.CatalogRepository()
	restaurant, err := catalogRepo.GetRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return wrapInfra("could not create order", err)
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, selection := range cmd.Items() {
		dish, dishErr := catalogRepo.GetDish(ctx, selection.DishID)
		if dishErr != nil {
			return wrapInfra("could not create order", dishErr)
		}

		price := h.pricer.Price(dish, selection.Options)
		item, itemErr := order.NewItem(dish.ID(), dish.Name(), price, selection.Options)
		if itemErr != nil {
			return itemErr
		}
		items = append(items, item)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), restaurant.ID(), items)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return wrapInfra("could not create order", err)
	}

	if err = uow.Commit(ctx); err != nil {
		return wrapInfra("could not create order", err)
	}

	h.bus.Publish(ctx, ports.TopicPendingOrders, ports.OrderEvent{
		Order:             newOrder,
		RestaurantOwnerID: restaurant.OwnerID(),
	})

	return nil
}
