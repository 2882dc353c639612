package queries

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrGetStalePendingOrdersQueryIsNotConstructed = errors.New(
	"GetStalePendingOrdersQuery must be created via NewGetStalePendingOrdersQuery constructor",
)

// GetStalePendingOrdersQuery finds orders still pending after the given age.
// The reminder job runs it periodically and re-announces the results to the
// restaurant owners who have not reacted yet.
type GetStalePendingOrdersQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalePendingOrdersQuery creates a query for pending orders older than
// the given age. The age must be positive.
func NewGetStalePendingOrdersQuery(olderThan time.Duration) (GetStalePendingOrdersQuery, error) {
	if olderThan <= 0 {
		return GetStalePendingOrdersQuery{}, errs.NewValueIsInvalidError("olderThan")
	}

	return GetStalePendingOrdersQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStalePendingOrdersQueryIsNotConstructed if validation fails.
func (q GetStalePendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePendingOrdersQueryIsNotConstructed)
}

// OlderThan returns the minimum age a pending order must have to be reported.
func (q GetStalePendingOrdersQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetStalePendingOrdersQueryResponse is one stale pending order together with
// the owner who should be reminded. The full aggregate is returned because the
// reminder republishes it as an event.
type GetStalePendingOrdersQueryResponse struct {
	Order             *order.Order
	RestaurantOwnerID kernel.UUID
}
