// Package queries contains read-only operations serving the query side of the
// CQRS split. Handlers read the database directly and return response DTOs;
// they never mutate state and never publish events.
package queries

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery lists the orders visible to the acting user, optionally
// narrowed to one status. Visibility is scoped by role: customers see their own
// orders, drivers their assigned ones, owners the orders placed against their
// restaurants.
//
// Example:
//
//	query, err := NewGetOrdersQuery(actor, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid listing request: %w", err)
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type GetOrdersQuery struct {
	actor  user.User
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query listing the actor's visible orders.
// Pass a nil status to list across all statuses.
func NewGetOrdersQuery(actor user.User, status *order.Status) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		actor:  actor,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Actor returns the authenticated user whose visible orders are listed.
func (q GetOrdersQuery) Actor() user.User {
	return q.actor
}

// Status returns the optional status filter, nil when listing all statuses.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}

// GetOrdersQueryResponse is one order summary row in a listing. Items are
// omitted from summaries; fetch the single order for the full detail.
type GetOrdersQueryResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Status       order.Status
	Total        kernel.Money
	CreatedAt    time.Time
}
