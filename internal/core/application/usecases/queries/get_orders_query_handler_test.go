package queries_test

import (
	"context"
	"testing"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"

	"github.com/stretchr/testify/suite"
)

type GetOrdersQueryHandlerTestSuite struct {
	postgresSuite
	handler queries.GetOrdersQueryHandler
}

func (s *GetOrdersQueryHandlerTestSuite) SetupSuite() {
	s.postgresSuite.SetupSuite()
	s.handler = queries.NewGetOrdersQueryHandler(s.db)
}

func (s *GetOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	actor, err := user.NewUser(kernel.NewUUID(), user.Customer)
	s.Require().NoError(err)

	query, err := queries.NewGetOrdersQuery(actor, nil)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.NotNil(result)
	s.Empty(result)
}

func (s *GetOrdersQueryHandlerTestSuite) TestHandle_CustomerSeesOnlyOwnOrders() {
	customerID := kernel.NewUUID()
	otherCustomerID := kernel.NewUUID()
	restaurant := s.seedRestaurant(kernel.NewUUID())

	own1 := s.seedOrder(customerID, restaurant.ID())
	own2 := s.seedOrder(customerID, restaurant.ID())
	s.seedOrder(otherCustomerID, restaurant.ID())

	actor, err := user.NewUser(customerID, user.Customer)
	s.Require().NoError(err)

	query, err := queries.NewGetOrdersQuery(actor, nil)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
	}
	s.True(resultIDs[own1.ID()])
	s.True(resultIDs[own2.ID()])
}

func (s *GetOrdersQueryHandlerTestSuite) TestHandle_OwnerSeesOrdersAgainstTheirRestaurants() {
	ownerID := kernel.NewUUID()
	ownRestaurant := s.seedRestaurant(ownerID)
	foreignRestaurant := s.seedRestaurant(kernel.NewUUID())

	visible := s.seedOrder(kernel.NewUUID(), ownRestaurant.ID())
	s.seedOrder(kernel.NewUUID(), foreignRestaurant.ID())

	actor, err := user.NewUser(ownerID, user.Owner)
	s.Require().NoError(err)

	query, err := queries.NewGetOrdersQuery(actor, nil)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.True(result[0].ID.IsEqual(visible.ID()))
	s.True(result[0].RestaurantID.IsEqual(ownRestaurant.ID()))
}

func (s *GetOrdersQueryHandlerTestSuite) TestHandle_DriverSeesOnlyAssignedOrders() {
	driverID := kernel.NewUUID()
	restaurant := s.seedRestaurant(kernel.NewUUID())

	assigned := s.seedOrder(kernel.NewUUID(), restaurant.ID())
	s.Require().NoError(assigned.AssignDriver(driverID))
	s.Require().NoError(s.orderRepo.Update(context.Background(), assigned))

	s.seedOrder(kernel.NewUUID(), restaurant.ID()) // unclaimed

	actor, err := user.NewUser(driverID, user.Driver)
	s.Require().NoError(err)

	query, err := queries.NewGetOrdersQuery(actor, nil)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.True(result[0].ID.IsEqual(assigned.ID()))
}

func (s *GetOrdersQueryHandlerTestSuite) TestHandle_StatusFilterNarrowsResults() {
	customerID := kernel.NewUUID()
	restaurant := s.seedRestaurant(kernel.NewUUID())

	cooking := s.seedOrder(customerID, restaurant.ID())
	s.Require().NoError(cooking.ChangeStatus(order.Cooking))
	s.Require().NoError(s.orderRepo.Update(context.Background(), cooking))

	s.seedOrder(customerID, restaurant.ID()) // stays pending

	actor, err := user.NewUser(customerID, user.Customer)
	s.Require().NoError(err)

	status := order.Cooking
	query, err := queries.NewGetOrdersQuery(actor, &status)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.True(result[0].ID.IsEqual(cooking.ID()))
	s.Equal(order.Cooking, result[0].Status)
}

func (s *GetOrdersQueryHandlerTestSuite) TestHandle_SummaryCarriesTotalAndStatus() {
	customerID := kernel.NewUUID()
	restaurant := s.seedRestaurant(kernel.NewUUID())
	seeded := s.seedOrder(customerID, restaurant.ID())

	actor, err := user.NewUser(customerID, user.Customer)
	s.Require().NoError(err)

	query, err := queries.NewGetOrdersQuery(actor, nil)
	s.Require().NoError(err)

	result, err := s.handler.Handle(context.Background(), query)

	s.Require().NoError(err)
	s.Require().Len(result, 1)
	s.True(result[0].Total.IsEqual(seeded.Total()))
	s.Equal(order.Pending, result[0].Status)
}

func (s *GetOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetOrdersQuery{}

	result, err := s.handler.Handle(context.Background(), invalidQuery)

	s.Require().Error(err)
	s.Nil(result)
	s.Contains(err.Error(), "must be created via NewGetOrdersQuery constructor")
}

func TestGetOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrdersQueryHandlerTestSuite))
}
