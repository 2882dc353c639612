// Package eventbus provides the in-process publish/subscribe broker behind the
// EventBus port. Delivery is per subscriber through a buffered channel; a
// subscriber that stops draining loses events instead of blocking publishers.
package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"eats/internal/core/ports"
)

// BufferSize is the per-subscription channel capacity. Events beyond it are
// dropped for that subscriber only.
const BufferSize = 16

// subscription is one registered subscriber on one topic.
type subscription struct {
	topic  ports.Topic
	filter ports.Filter
	events chan ports.OrderEvent

	mu     sync.Mutex
	closed bool
}

// Events returns the channel delivering matched events. The channel is closed
// on unsubscribe.
func (s *subscription) Events() <-chan ports.OrderEvent {
	return s.events
}

// deliver attempts a non-blocking send. Reports false when the subscription is
// closed or its buffer is full. The mutex excludes a send racing the close.
func (s *subscription) deliver(event ports.OrderEvent) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.events <- event:
		return true
	default:
		return false
	}
}

func (s *subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	close(s.events)
}

// InMemoryEventBus implements the EventBus port for a single process. Filters
// run on the publisher's goroutine; a panicking filter is logged and treated
// as a non-match, never taking the publisher down.
type InMemoryEventBus struct {
	mu          sync.RWMutex
	subscribers map[ports.Topic]map[*subscription]struct{}
	logger      *slog.Logger
}

// NewInMemoryEventBus creates an event bus logging filter panics and dropped
// events through the given logger.
func NewInMemoryEventBus(logger *slog.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		subscribers: make(map[ports.Topic]map[*subscription]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a subscriber on a topic. A nil filter matches every
// event on the topic.
func (b *InMemoryEventBus) Subscribe(topic ports.Topic, filter ports.Filter) ports.Subscription {
	sub := &subscription{
		topic:  topic,
		filter: filter,
		events: make(chan ports.OrderEvent, BufferSize),
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subscribers[topic] == nil {
		b.subscribers[topic] = make(map[*subscription]struct{})
	}
	b.subscribers[topic][sub] = struct{}{}

	return sub
}

// Unsubscribe deregisters the subscription and closes its channel. Safe to
// call more than once; once it returns, no further events are delivered.
func (b *InMemoryEventBus) Unsubscribe(sub ports.Subscription) {
	s, ok := sub.(*subscription)
	if !ok {
		return
	}

	b.mu.Lock()
	if subs := b.subscribers[s.topic]; subs != nil {
		delete(subs, s)
		if len(subs) == 0 {
			delete(b.subscribers, s.topic)
		}
	}
	b.mu.Unlock()

	s.close()
}

// Publish delivers the event to every subscriber of the topic whose filter
// accepts it. With no subscribers it is a no-op. Publish never blocks on slow
// subscribers.
func (b *InMemoryEventBus) Publish(_ context.Context, topic ports.Topic, event ports.OrderEvent) {
	b.mu.RLock()
	subs := make([]*subscription, 0, len(b.subscribers[topic]))
	for sub := range b.subscribers[topic] {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	for _, sub := range subs {
		if !b.matches(sub, event) {
			continue
		}
		if !sub.deliver(event) {
			b.logger.Warn("event dropped for slow subscriber",
				"topic", string(topic),
				"order_id", event.Order.ID().String(),
			)
		}
	}
}

// matches evaluates the subscription's filter, recovering from panics.
func (b *InMemoryEventBus) matches(sub *subscription, event ports.OrderEvent) (matched bool) {
	if sub.filter == nil {
		return true
	}

	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("subscriber filter panicked",
				"topic", string(sub.topic),
				"panic", r,
			)
			matched = false
		}
	}()

	return sub.filter(event)
}
