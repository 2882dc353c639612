package queries

import (
	"context"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStalePendingOrdersQueryHandler retrieves pending orders nobody has acted
// on within the configured age, oldest first.
type GetStalePendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetStalePendingOrdersQueryHandler creates a handler for stale pending
// order queries. Requires a GORM database connection for query execution.
func NewGetStalePendingOrdersQueryHandler(db *gorm.DB) GetStalePendingOrdersQueryHandler {
	return GetStalePendingOrdersQueryHandler{db: db}
}

// Handle executes the query. Orders created before now minus the query's age
// that are still pending are returned with their restaurant owner identities.
func (h GetStalePendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetStalePendingOrdersQuery,
) ([]GetStalePendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())
	results := make([]GetStalePendingOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			o.driver_id,
			o.items,
			o.total_cents,
			o.status,
			o.created_at,
			r.owner_id
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.status = ? AND o.created_at < ?
		ORDER BY o.created_at
	`, int(order.Pending), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			customerID   uuid.UUID
			restaurantID uuid.UUID
			driverID     *uuid.UUID
			itemsRaw     []byte
			totalCents   int64
			status       int
			createdAt    time.Time
			ownerID      uuid.UUID
		)

		err = rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&driverID,
			&itemsRaw,
			&totalCents,
			&status,
			&createdAt,
			&ownerID,
		)
		if err != nil {
			return nil, err
		}

		restored, restoreErr := restoreOrderRow(
			id, customerID, restaurantID, driverID, itemsRaw, totalCents, status, createdAt,
		)
		if restoreErr != nil {
			return nil, restoreErr
		}

		restaurantOwnerID, idErr := kernel.UUIDFromBytes(ownerID[:])
		if idErr != nil {
			return nil, idErr
		}

		results = append(results, GetStalePendingOrdersQueryResponse{
			Order:             restored,
			RestaurantOwnerID: restaurantOwnerID,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
