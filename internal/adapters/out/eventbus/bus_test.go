package eventbus_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"eats/internal/adapters/out/eventbus"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBus() *eventbus.InMemoryEventBus {
	return eventbus.NewInMemoryEventBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newOrderEvent(t *testing.T, customerID kernel.UUID, ownerID kernel.UUID) ports.OrderEvent {
	t.Helper()

	price, err := kernel.NewMoneyFromCents(900)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Ramen", price, nil)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, kernel.NewUUID(), []order.Item{item})
	require.NoError(t, err)

	return ports.OrderEvent{Order: o, RestaurantOwnerID: ownerID}
}

func TestPublish_DeliversToMatchingSubscriber(t *testing.T) {
	bus := newBus()
	ownerID := kernel.NewUUID()
	sub := bus.Subscribe(ports.TopicPendingOrders, ports.ForOwner(ownerID))

	event := newOrderEvent(t, kernel.NewUUID(), ownerID)
	bus.Publish(context.Background(), ports.TopicPendingOrders, event)

	received := <-sub.Events()
	assert.True(t, received.Order.IsEqual(event.Order))
}

func TestPublish_OtherOwnersDoNotReceive(t *testing.T) {
	bus := newBus()
	ownerID := kernel.NewUUID()
	otherSub := bus.Subscribe(ports.TopicPendingOrders, ports.ForOwner(kernel.NewUUID()))
	ownSub := bus.Subscribe(ports.TopicPendingOrders, ports.ForOwner(ownerID))

	bus.Publish(context.Background(), ports.TopicPendingOrders, newOrderEvent(t, kernel.NewUUID(), ownerID))

	require.Len(t, ownSub.Events(), 1)
	assert.Empty(t, otherSub.Events())
}

func TestPublish_OrderParticipantFilterScopesByOrder(t *testing.T) {
	bus := newBus()
	customerID := kernel.NewUUID()
	eventX := newOrderEvent(t, customerID, kernel.NewUUID())
	eventY := newOrderEvent(t, customerID, kernel.NewUUID())

	subX := bus.Subscribe(ports.TopicOrderUpdates, ports.ForOrderParticipant(customerID, eventX.Order.ID()))
	subY := bus.Subscribe(ports.TopicOrderUpdates, ports.ForOrderParticipant(customerID, eventY.Order.ID()))

	bus.Publish(context.Background(), ports.TopicOrderUpdates, eventX)

	require.Len(t, subX.Events(), 1)
	assert.Empty(t, subY.Events())
}

func TestPublish_TopicsAreIsolated(t *testing.T) {
	bus := newBus()
	driverSub := bus.Subscribe(ports.TopicCookedOrders, ports.AnyDriver())

	bus.Publish(context.Background(), ports.TopicPendingOrders, newOrderEvent(t, kernel.NewUUID(), kernel.NewUUID()))

	assert.Empty(t, driverSub.Events())
}

func TestPublish_NoSubscribers_NoOp(t *testing.T) {
	bus := newBus()

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), ports.TopicPendingOrders, newOrderEvent(t, kernel.NewUUID(), kernel.NewUUID()))
	})
}

func TestUnsubscribe_ClosesChannelAndStopsDelivery(t *testing.T) {
	bus := newBus()
	sub := bus.Subscribe(ports.TopicCookedOrders, ports.AnyDriver())

	bus.Unsubscribe(sub)
	bus.Publish(context.Background(), ports.TopicCookedOrders, newOrderEvent(t, kernel.NewUUID(), kernel.NewUUID()))

	_, open := <-sub.Events()
	assert.False(t, open)
}

func TestUnsubscribe_Twice_IsSafe(t *testing.T) {
	bus := newBus()
	sub := bus.Subscribe(ports.TopicCookedOrders, ports.AnyDriver())

	assert.NotPanics(t, func() {
		bus.Unsubscribe(sub)
		bus.Unsubscribe(sub)
	})
}

func TestPublish_PanickingFilterIsSkipped(t *testing.T) {
	bus := newBus()
	panicking := bus.Subscribe(ports.TopicCookedOrders, func(ports.OrderEvent) bool {
		panic("broken filter")
	})
	healthy := bus.Subscribe(ports.TopicCookedOrders, ports.AnyDriver())

	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), ports.TopicCookedOrders, newOrderEvent(t, kernel.NewUUID(), kernel.NewUUID()))
	})

	require.Len(t, healthy.Events(), 1)
	assert.Empty(t, panicking.Events())
}

func TestPublish_SlowSubscriberDropsBeyondBuffer(t *testing.T) {
	bus := newBus()
	sub := bus.Subscribe(ports.TopicCookedOrders, ports.AnyDriver())

	event := newOrderEvent(t, kernel.NewUUID(), kernel.NewUUID())
	for range eventbus.BufferSize + 5 {
		bus.Publish(context.Background(), ports.TopicCookedOrders, event)
	}

	assert.Len(t, sub.Events(), eventbus.BufferSize)
}

func TestSubscribe_NilFilterMatchesEverything(t *testing.T) {
	bus := newBus()
	sub := bus.Subscribe(ports.TopicOrderUpdates, nil)

	bus.Publish(context.Background(), ports.TopicOrderUpdates, newOrderEvent(t, kernel.NewUUID(), kernel.NewUUID()))

	assert.Len(t, sub.Events(), 1)
}
