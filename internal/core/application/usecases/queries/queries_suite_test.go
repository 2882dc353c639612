package queries_test

import (
	"context"
	"time"

	"eats/internal/adapters/out/postgres/catalogrepo"
	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the order repository's tracker without
// recording anything; tracking is irrelevant on the query side.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// postgresSuite boots one throwaway PostgreSQL container for a handler suite
// and offers seeding helpers shared by the query handler tests.
type postgresSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
}

func (s *postgresSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	s.Require().NoError(err)
	s.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &catalogrepo.RestaurantDTO{}, &catalogrepo.DishDTO{})
	s.Require().NoError(err)

	s.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
}

func (s *postgresSuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *postgresSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE orders, restaurants, dishes CASCADE").Error
	s.Require().NoError(err)
}

func (s *postgresSuite) seedRestaurant(ownerID kernel.UUID) *catalog.Restaurant {
	restaurant, err := catalog.NewRestaurant(kernel.NewUUID(), ownerID, "Test Kitchen")
	s.Require().NoError(err)

	dto := catalogrepo.FromRestaurant(restaurant)
	err = s.db.Create(&dto).Error
	s.Require().NoError(err)

	return restaurant
}

func (s *postgresSuite) seedOrder(customerID kernel.UUID, restaurantID kernel.UUID) *order.Order {
	price, err := kernel.NewMoneyFromCents(1500)
	s.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), "Pad Thai", price, nil)
	s.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, []order.Item{item})
	s.Require().NoError(err)

	err = s.orderRepo.Add(context.Background(), o)
	s.Require().NoError(err)

	return o
}
