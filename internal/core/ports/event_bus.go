package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// Topic names one of the three logical event streams the order core publishes.
type Topic string

const (
	// TopicPendingOrders carries freshly created orders to restaurant owners.
	TopicPendingOrders Topic = "orders.pending"

	// TopicCookedOrders carries orders ready for pickup to any subscribed driver.
	TopicCookedOrders Topic = "orders.cooked"

	// TopicOrderUpdates carries status and assignment changes to the
	// participants of a specific order.
	TopicOrderUpdates Topic = "orders.updated"
)

// OrderEvent is the payload published on every topic: an immutable snapshot of
// the order after the change, plus the restaurant owner's identity so filters
// can match owners without a catalog lookup of their own.
type OrderEvent struct {
	Order             *order.Order
	RestaurantOwnerID kernel.UUID
}

// Filter decides per subscriber whether an event is delivered. It must be a
// pure predicate over the event and the immutable parameters captured at
// subscription time; it is evaluated on the publisher's goroutine.
type Filter func(event OrderEvent) bool

// Subscription is the handle returned by Subscribe. Events arrive on the
// channel until the subscription is cancelled through EventBus.Unsubscribe,
// which also closes the channel.
type Subscription interface {
	// Events returns the channel delivering matched events.
	Events() <-chan OrderEvent
}

// EventBus is the in-process publish/subscribe broker distributing order
// lifecycle events to long-lived subscribers.
//
// Publishing with zero active subscribers is a no-op. Delivery order across
// subscribers of one publish is unspecified. A subscriber must never receive
// an event after its unsubscribe has completed.
type EventBus interface {
	// Publish delivers the event to every active subscriber of the topic whose
	// filter accepts it.
	Publish(ctx context.Context, topic Topic, event OrderEvent)

	// Subscribe registers a subscriber on a topic with a delivery filter.
	Subscribe(topic Topic, filter Filter) Subscription

	// Unsubscribe deregisters the subscription and closes its channel. It is
	// safe to call more than once.
	Unsubscribe(sub Subscription)
}

// ForOwner builds the pending-orders filter: only events for restaurants owned
// by ownerID are delivered.
func ForOwner(ownerID kernel.UUID) Filter {
	return func(event OrderEvent) bool {
		return event.RestaurantOwnerID.IsEqual(ownerID)
	}
}

// AnyDriver builds the cooked-orders filter: every subscribed driver may see
// every cooked order, so the filter accepts all events.
func AnyDriver() Filter {
	return func(OrderEvent) bool {
		return true
	}
}

// ForOrderParticipant builds the order-updates filter. An event is delivered
// only when it belongs to the order bound at subscription time and the
// subscriber is one of that order's three participants: its customer, its
// assigned driver, or the restaurant's owner.
func ForOrderParticipant(userID kernel.UUID, orderID kernel.UUID) Filter {
	return func(event OrderEvent) bool {
		if !event.Order.ID().IsEqual(orderID) {
			return false
		}

		if event.Order.CustomerID().IsEqual(userID) {
			return true
		}
		if driverID := event.Order.DriverID(); driverID != nil && driverID.IsEqual(userID) {
			return true
		}
		return event.RestaurantOwnerID.IsEqual(userID)
	}
}
