package postgres_test

import (
	"context"
	"testing"
	"time"

	"eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/postgres/catalogrepo"
	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/core/domain/model/catalog"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GormUnitOfWorkTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (s *GormUnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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
}

func (s *GormUnitOfWorkTestSuite) TearDownSuite() {
	if s.container != nil {
		err := s.container.Terminate(context.Background())
		s.Require().NoError(err)
	}
}

func (s *GormUnitOfWorkTestSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE orders, restaurants, dishes CASCADE").Error
	s.Require().NoError(err)

	s.factory = postgres.NewGormUnitOfWorkFactory(s.db)
}

func (s *GormUnitOfWorkTestSuite) newOrder() *order.Order {
	price, err := kernel.NewMoneyFromCents(900)
	s.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), "Ramen", price, nil)
	s.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), []order.Item{item})
	s.Require().NoError(err)
	return o
}

func (s *GormUnitOfWorkTestSuite) TestCommit_PersistsChanges() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().NoError(uow.Begin(ctx))

	saved := s.newOrder()
	s.Require().NoError(uow.OrderRepository().Add(ctx, saved))
	s.Require().NoError(uow.Commit(ctx))

	loaded, err := s.factory.Create().OrderRepository().Get(ctx, saved.ID())
	s.Require().NoError(err)
	s.True(loaded.IsEqual(saved))
}

func (s *GormUnitOfWorkTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().NoError(uow.Begin(ctx))

	saved := s.newOrder()
	s.Require().NoError(uow.OrderRepository().Add(ctx, saved))
	s.Require().NoError(uow.Rollback(ctx))

	_, err := s.factory.Create().OrderRepository().Get(ctx, saved.ID())
	s.Require().Error(err)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *GormUnitOfWorkTestSuite) TestCommit_WithoutBegin_Fails() {
	uow := s.factory.Create()
	err := uow.Commit(context.Background())
	s.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (s *GormUnitOfWorkTestSuite) TestRollback_WithoutBegin_Fails() {
	uow := s.factory.Create()
	err := uow.Rollback(context.Background())
	s.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (s *GormUnitOfWorkTestSuite) TestBegin_Twice_KeepsTransaction() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Begin(ctx))

	saved := s.newOrder()
	s.Require().NoError(uow.OrderRepository().Add(ctx, saved))
	s.Require().NoError(uow.Commit(ctx))

	_, err := s.factory.Create().OrderRepository().Get(ctx, saved.ID())
	s.Require().NoError(err)
}

func (s *GormUnitOfWorkTestSuite) TestRepositories_ShareOneTransaction() {
	ctx := context.Background()

	restaurant, err := catalog.NewRestaurant(kernel.NewUUID(), kernel.NewUUID(), "Noodle House")
	s.Require().NoError(err)

	dto := catalogrepo.FromRestaurant(restaurant)
	s.Require().NoError(s.db.Create(&dto).Error)

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loaded, err := uow.CatalogRepository().GetRestaurant(ctx, restaurant.ID())
	s.Require().NoError(err)
	s.True(loaded.ID().IsEqual(restaurant.ID()))

	saved := s.newOrder()
	s.Require().NoError(uow.OrderRepository().Add(ctx, saved))

	// Not yet visible outside the transaction.
	_, err = s.factory.Create().OrderRepository().Get(ctx, saved.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	s.Require().NoError(uow.Commit(ctx))

	_, err = s.factory.Create().OrderRepository().Get(ctx, saved.ID())
	s.Require().NoError(err)
}

func TestGormUnitOfWorkTestSuite(t *testing.T) {
	suite.Run(t, new(GormUnitOfWorkTestSuite))
}
