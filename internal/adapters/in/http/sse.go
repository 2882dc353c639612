package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// StreamPendingOrders handles GET /api/v1/streams/pending-orders - pushes new
// pending orders to the acting restaurant owner as server-sent events.
func (s *Server) StreamPendingOrders(c echo.Context) error {
	actor, err := identityFromRequest(c)
	if err != nil {
		return unauthorized(c)
	}
	if actor.Role() != user.Owner {
		return c.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "only owners can watch pending orders",
		})
	}

	sub := s.bus.Subscribe(ports.TopicPendingOrders, ports.ForOwner(actor.ID()))
	defer s.bus.Unsubscribe(sub)

	return s.stream(c, sub)
}

// StreamCookedOrders handles GET /api/v1/streams/cooked-orders - pushes orders
// ready for pickup to the acting driver as server-sent events.
func (s *Server) StreamCookedOrders(c echo.Context) error {
	actor, err := identityFromRequest(c)
	if err != nil {
		return unauthorized(c)
	}
	if actor.Role() != user.Driver {
		return c.JSON(http.StatusForbidden, Error{
			Code:    http.StatusForbidden,
			Message: "only drivers can watch cooked orders",
		})
	}

	sub := s.bus.Subscribe(ports.TopicCookedOrders, ports.AnyDriver())
	defer s.bus.Unsubscribe(sub)

	return s.stream(c, sub)
}

// StreamOrderUpdates handles GET /api/v1/streams/orders/:id - pushes status
// and assignment changes of one order to its participants. The subscription
// filter ensures a non-participant holds an open but silent stream.
func (s *Server) StreamOrderUpdates(c echo.Context) error {
	actor, err := identityFromRequest(c)
	if err != nil {
		return unauthorized(c)
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "invalid order id")
	}

	sub := s.bus.Subscribe(ports.TopicOrderUpdates, ports.ForOrderParticipant(actor.ID(), orderID))
	defer s.bus.Unsubscribe(sub)

	return s.stream(c, sub)
}

// stream writes bus events to the response as server-sent events until the
// client disconnects or the subscription is closed.
func (s *Server) stream(c echo.Context, sub ports.Subscription) error {
	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, open := <-sub.Events():
			if !open {
				return nil
			}

			payload, err := json.Marshal(payloadFromEvent(event))
			if err != nil {
				return err
			}

			if _, err = fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
				return err
			}
			w.Flush()
		}
	}
}
