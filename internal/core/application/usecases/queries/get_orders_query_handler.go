package queries

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists order summaries from the database, scoped to the
// acting user's role. The scoping happens in SQL so a user can never receive a
// row they are not allowed to see.
//
// Example:
//
//	handler := NewGetOrdersQueryHandler(db)
//	query, _ := NewGetOrdersQuery(actor, nil)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to list orders: %v", err)
//	    return err
//	}
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted newest first; an actor with
// no visible orders gets an empty slice, not an error.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql, args, err := buildListSQL(query)
	if err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id           uuid.UUID
			restaurantID uuid.UUID
			status       int
			totalCents   int64
			resp         GetOrdersQueryResponse
		)

		err = rows.Scan(
			&id,
			&restaurantID,
			&status,
			&totalCents,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		rID, idErr := kernel.UUIDFromBytes(restaurantID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.RestaurantID = rID

		total, moneyErr := kernel.NewMoneyFromCents(totalCents)
		if moneyErr != nil {
			return nil, moneyErr
		}
		resp.Total = total
		resp.Status = order.Status(status)

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// buildListSQL assembles the role-scoped listing statement. Scoping by role in
// the WHERE clause is what keeps listings fail-closed.
func buildListSQL(query GetOrdersQuery) (string, []any, error) {
	sql := `
		SELECT
			o.id,
			o.restaurant_id,
			o.status,
			o.total_cents,
			o.created_at
		FROM orders o
	`
	var args []any

	switch query.Actor().Role() {
	case user.Customer:
		sql += ` WHERE o.customer_id = ?`
		args = append(args, query.Actor().ID().Bytes())
	case user.Driver:
		sql += ` WHERE o.driver_id = ?`
		args = append(args, query.Actor().ID().Bytes())
	case user.Owner:
		sql += `
			JOIN restaurants r ON r.id = o.restaurant_id
			WHERE r.owner_id = ?
		`
		args = append(args, query.Actor().ID().Bytes())
	default:
		return "", nil, errs.NewForbiddenError("unknown role cannot list orders")
	}

	if status := query.Status(); status != nil {
		sql += ` AND o.status = ?`
		args = append(args, int(*status))
	}

	sql += ` ORDER BY o.created_at DESC, o.id`

	return sql, args, nil
}
