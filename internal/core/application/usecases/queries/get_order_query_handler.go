package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its items and authorizes the
// actor against it before returning anything.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		db:     db,
		policy: services.NewAccessPolicy(),
	}
}

// Handle executes the query. A missing order yields a not-found error; an
// existing order the actor may not see yields a forbidden error.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

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

	err := row.Scan(
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
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{}, err
	}

	restored, err := restoreOrderRow(id, customerID, restaurantID, driverID, itemsRaw, totalCents, status, createdAt)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	restaurantOwnerID, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if !h.policy.CanView(query.Actor(), restored, restaurantOwnerID) {
		return GetOrderQueryResponse{}, errs.NewForbiddenError("you can't see this order")
	}

	items := make([]GetOrderItemResponse, 0, len(restored.Items()))
	for _, item := range restored.Items() {
		options := make([]GetOrderItemOptionResponse, 0, len(item.Options()))
		for _, option := range item.Options() {
			options = append(options, GetOrderItemOptionResponse{
				Name:   option.Name(),
				Choice: option.Choice(),
			})
		}

		items = append(items, GetOrderItemResponse{
			DishID:   item.DishID(),
			DishName: item.DishName(),
			Price:    item.Price(),
			Options:  options,
		})
	}

	return GetOrderQueryResponse{
		ID:           restored.ID(),
		CustomerID:   restored.CustomerID(),
		RestaurantID: restored.RestaurantID(),
		DriverID:     restored.DriverID(),
		Items:        items,
		Total:        restored.Total(),
		Status:       restored.Status(),
		CreatedAt:    restored.CreatedAt(),
	}, nil
}
