package commands_test

import (
	"context"
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCatalogRepository struct{ mock.Mock }

func (m *MockCatalogRepository) GetRestaurant(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Restaurant), args.Error(1)
}

func (m *MockCatalogRepository) GetDish(ctx context.Context, id kernel.UUID) (*catalog.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Dish), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) CatalogRepository() ports.CatalogRepository {
	args := m.Called()
	return args.Get(0).(ports.CatalogRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEventBus struct{ mock.Mock }

func (m *MockEventBus) Publish(ctx context.Context, topic ports.Topic, event ports.OrderEvent) {
	m.Called(ctx, topic, event)
}

func (m *MockEventBus) Subscribe(topic ports.Topic, filter ports.Filter) ports.Subscription {
	args := m.Called(topic, filter)
	return args.Get(0).(ports.Subscription)
}

func (m *MockEventBus) Unsubscribe(sub ports.Subscription) {
	m.Called(sub)
}

func mustUser(t *testing.T, role user.Role) user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), role)
	require.NoError(t, err)
	return u
}

func mustRestaurant(t *testing.T, ownerID kernel.UUID) *catalog.Restaurant {
	t.Helper()
	r, err := catalog.NewRestaurant(kernel.NewUUID(), ownerID, "Bob's Burgers")
	require.NoError(t, err)
	return r
}

func mustDish(t *testing.T, restaurantID kernel.UUID, priceCents int64) *catalog.Dish {
	t.Helper()
	price, err := kernel.NewMoneyFromCents(priceCents)
	require.NoError(t, err)
	d, err := catalog.NewDish(kernel.NewUUID(), restaurantID, "Cheeseburger", price, nil)
	require.NoError(t, err)
	return d
}

func mustPendingOrder(t *testing.T, customerID kernel.UUID, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	price, err := kernel.NewMoneyFromCents(1200)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), "Cheeseburger", price, nil)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, []order.Item{item})
	require.NoError(t, err)
	return o
}
