package http

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the authentication gateway in front of this service.
// Token verification happens there; this service trusts the headers.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

var errMissingIdentity = errors.New("identity headers are required")

// identityFromRequest builds the acting user from the gateway headers.
func identityFromRequest(c echo.Context) (user.User, error) {
	rawID := c.Request().Header.Get(HeaderUserID)
	rawRole := c.Request().Header.Get(HeaderUserRole)
	if rawID == "" || rawRole == "" {
		return user.User{}, errMissingIdentity
	}

	id, err := kernel.UUIDFromString(rawID)
	if err != nil {
		return user.User{}, err
	}

	role, err := user.RoleFromString(rawRole)
	if err != nil {
		return user.User{}, err
	}

	return user.NewUser(id, role)
}
