package queries

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order in full detail, items included. The actor
// must be a participant of the order: its customer, its assigned driver, or the
// owner of the restaurant it was placed against.
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   user.User

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query fetching one order for the acting user.
func NewGetOrderQuery(orderID kernel.UUID, actor user.User) (GetOrderQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Actor returns the authenticated user requesting the order.
func (q GetOrderQuery) Actor() user.User {
	return q.actor
}

// GetOrderQueryResponse is the full order detail.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	CustomerID   kernel.UUID
	RestaurantID kernel.UUID
	DriverID     *kernel.UUID
	Items        []GetOrderItemResponse
	Total        kernel.Money
	Status       order.Status
	CreatedAt    time.Time
}

// GetOrderItemResponse is one line item within the order detail.
type GetOrderItemResponse struct {
	DishID   kernel.UUID
	DishName string
	Price    kernel.Money
	Options  []GetOrderItemOptionResponse
}

// GetOrderItemOptionResponse is one recorded customization within an item.
// Choice is empty for flat-extra options.
type GetOrderItemOptionResponse struct {
	Name   string
	Choice string
}
