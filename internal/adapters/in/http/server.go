// Package http is the inbound REST and SSE adapter. It translates transport
// concerns (identity headers, JSON bodies, status codes, event streams) into
// commands and queries, and maps domain errors back to HTTP statuses.
package http

import (
	"errors"
	"net/http"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler commands.CreateOrderCommandHandler
	editOrderHandler   commands.EditOrderCommandHandler
	takeOrderHandler   commands.TakeOrderCommandHandler

	// Query handlers
	getOrdersHandler queries.GetOrdersQueryHandler
	getOrderHandler  queries.GetOrderQueryHandler

	bus ports.EventBus
}

// NewServer creates an HTTP server with the required command and query
// handlers and the event bus backing the SSE streams.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	editOrderHandler commands.EditOrderCommandHandler,
	takeOrderHandler commands.TakeOrderCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	bus ports.EventBus,
) *Server {
	return &Server{
		createOrderHandler: createOrderHandler,
		editOrderHandler:   editOrderHandler,
		takeOrderHandler:   takeOrderHandler,
		getOrdersHandler:   getOrdersHandler,
		getOrderHandler:    getOrderHandler,
		bus:                bus,
	}
}

// RegisterRoutes mounts all order endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.EditOrderStatus)
	api.POST("/orders/:id/take", s.TakeOrder)

	api.GET("/streams/pending-orders", s.StreamPendingOrders)
	api.GET("/streams/cooked-orders", s.StreamCookedOrders)
	api.GET("/streams/orders/:id", s.StreamOrderUpdates)
}

// CreateOrder handles POST /api/v1/orders - places a new order for the acting
// customer.
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := identityFromRequest(c)
	if err != nil {
		return unauthorized(c)
	}
	if actor.Role() != user.Customer {
		return c.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "only customers can place orders",
		})
	}

	var req CreateOrderRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return badRequest(c, "invalid restaurant id")
	}

	items := make([]commands.ItemSelection, 0, len(req.Items))
	for _, itemReq := range req.Items {
		dishID, dishErr := kernel.UUIDFromString(itemReq.DishID)
		if dishErr != nil {
			return badRequest(c, "invalid dish id")
		}

		options := make([]order.SelectedOption, 0, len(itemReq.Options))
		for _, optionReq := range itemReq.Options {
			option, optionErr := order.NewSelectedOption(optionReq.Name, optionReq.Choice)
			if optionErr != nil {
				return badRequest(c, "invalid option selection")
			}
			options = append(options, option)
		}

		items = append(items, commands.ItemSelection{DishID: dishID, Options: options})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, actor.ID(), restaurantID, items)
	if err != nil {
		return domainError(c, err)
	}

	if err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusCreated, CreateOrderResponse{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders - lists the orders visible to the
// acting user, optionally filtered by ?status=.
func (s *Server) GetOrders(c echo.Context) error {
	actor, err := identityFromRequest(c)
	if err != nil {
		return unauthorized(c)
	}

	var statusFilter *order.Status
	if raw := c.QueryParam("status"); raw != "" {
		status, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return badRequest(c, "invalid status filter")
		}
		statusFilter = &status
	}

	query, err := queries.NewGetOrdersQuery(actor, statusFilter)
	if err != nil {
		return domainError(c, err)
	}

	rows, err := s.getOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return domainError(c, err)
	}

	response := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		response = append(response, summaryFromQuery(row))
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id - returns one order in full detail.
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := identityFromRequest(c)
	if err != nil {
		return unauthorized(c)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return domainError(c, err)
	}

	detail, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, detailFromQuery(detail))
}

// EditOrderStatus handles PATCH /api/v1/orders/:id/status - moves an order to
// a new status on behalf of the acting owner or driver.
func (s *Server) EditOrderStatus(c echo.Context) error {
	actor, err := identityFromRequest(c)
	if err != nil {
		return unauthorized(c)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	var req EditOrderStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(c, "invalid status")
	}

	cmd, err := commands.NewEditOrderCommand(orderID, actor, target)
	if err != nil {
		return domainError(c, err)
	}

	if err = s.editOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return domainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// TakeOrder handles POST /api/v1/orders/:id/take - claims an order for the
// acting driver.
func (s *Server) TakeOrder(c echo.Context) error {
	actor, err := identityFromRequest(c)
	if err != nil {
		return unauthorized(c)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	cmd, err := commands.NewTakeOrderCommand(orderID, actor)
	if err != nil {
		return domainError(c, err)
	}

	if err = s.takeOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return domainError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, Error{
		Code:    http.StatusUnauthorized,
		Message: "valid identity headers are required",
	})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// domainError maps a classified domain error to its HTTP status. Unclassified
// errors are treated as internal and reported with a fixed message so
// infrastructure details never leak to callers.
func domainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return c.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: err.Error()})
	case errors.Is(err, errs.ErrForbidden):
		return c.JSON(http.StatusForbidden, Error{Code: http.StatusForbidden, Message: err.Error()})
	case errors.Is(err, errs.ErrConflict):
		return c.JSON(http.StatusConflict, Error{Code: http.StatusConflict, Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "internal error",
		})
	}
}
