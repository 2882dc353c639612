package http

import (
	"time"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/ports"
)

// Error is the uniform error payload returned on every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload for placing a new order.
type CreateOrderRequest struct {
	RestaurantID string              `json:"restaurant_id"`
	Items        []CreateItemRequest `json:"items"`
}

// CreateItemRequest is one requested line item.
type CreateItemRequest struct {
	DishID  string                `json:"dish_id"`
	Options []ItemOptionRequest   `json:"options,omitempty"`
}

// ItemOptionRequest is one option selection against a dish.
// Choice is omitted for flat-extra options.
type ItemOptionRequest struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

// CreateOrderResponse returns the identifier the new order was created under.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// EditOrderStatusRequest is the payload for moving an order to a new status.
type EditOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderSummary is one row in an order listing.
type OrderSummary struct {
	ID           string    `json:"id"`
	RestaurantID string    `json:"restaurant_id"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"total_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

// OrderDetail is the full order representation, items included.
type OrderDetail struct {
	ID           string      `json:"id"`
	CustomerID   string      `json:"customer_id"`
	RestaurantID string      `json:"restaurant_id"`
	DriverID     *string     `json:"driver_id,omitempty"`
	Items        []OrderItem `json:"items"`
	TotalCents   int64       `json:"total_cents"`
	Status       string      `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// OrderItem is one line item in an order detail.
type OrderItem struct {
	DishID     string            `json:"dish_id"`
	DishName   string            `json:"dish_name"`
	PriceCents int64             `json:"price_cents"`
	Options    []OrderItemOption `json:"options,omitempty"`
}

// OrderItemOption is one recorded customization.
type OrderItemOption struct {
	Name   string `json:"name"`
	Choice string `json:"choice,omitempty"`
}

// OrderEventPayload is the SSE event body pushed to stream subscribers.
type OrderEventPayload struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	RestaurantID string    `json:"restaurant_id"`
	DriverID     *string   `json:"driver_id,omitempty"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"total_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

func summaryFromQuery(row queries.GetOrdersQueryResponse) OrderSummary {
	return OrderSummary{
		ID:           row.ID.String(),
		RestaurantID: row.RestaurantID.String(),
		Status:       row.Status.String(),
		TotalCents:   row.Total.Cents(),
		CreatedAt:    row.CreatedAt,
	}
}

func detailFromQuery(resp queries.GetOrderQueryResponse) OrderDetail {
	var driverID *string
	if resp.DriverID != nil {
		s := resp.DriverID.String()
		driverID = &s
	}

	items := make([]OrderItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		options := make([]OrderItemOption, 0, len(item.Options))
		for _, option := range item.Options {
			options = append(options, OrderItemOption{
				Name:   option.Name,
				Choice: option.Choice,
			})
		}

		items = append(items, OrderItem{
			DishID:     item.DishID.String(),
			DishName:   item.DishName,
			PriceCents: item.Price.Cents(),
			Options:    options,
		})
	}

	return OrderDetail{
		ID:           resp.ID.String(),
		CustomerID:   resp.CustomerID.String(),
		RestaurantID: resp.RestaurantID.String(),
		DriverID:     driverID,
		Items:        items,
		TotalCents:   resp.Total.Cents(),
		Status:       resp.Status.String(),
		CreatedAt:    resp.CreatedAt,
	}
}

func payloadFromEvent(event ports.OrderEvent) OrderEventPayload {
	var driverID *string
	if id := event.Order.DriverID(); id != nil {
		s := id.String()
		driverID = &s
	}

	return OrderEventPayload{
		ID:           event.Order.ID().String(),
		CustomerID:   event.Order.CustomerID().String(),
		RestaurantID: event.Order.RestaurantID().String(),
		DriverID:     driverID,
		Status:       event.Order.Status().String(),
		TotalCents:   event.Order.Total().Cents(),
		CreatedAt:    event.Order.CreatedAt(),
	}
}
