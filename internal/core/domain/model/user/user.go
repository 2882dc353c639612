// Package user provides the identity snapshot the order core receives from the
// authentication layer. Accounts, credentials, and token verification live
// upstream; the core only sees who is acting and in which role.
package user

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created through
// the NewUser factory function.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// Role is the actor role an authenticated user holds for the lifetime of a session.
// It drives both order visibility and which status transitions the actor may perform.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	UnknownRole Role = iota

	// Customer places orders and follows their progress.
	Customer

	// Owner runs one or more restaurants and moves orders through the kitchen.
	Owner

	// Driver picks up cooked orders and delivers them.
	Driver
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole: "Unknown",
		Customer:    "Customer",
		Owner:       "Owner",
		Driver:      "Driver",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Customer: "Customer",
		Owner:    "Owner",
		Driver:   "Driver",
	}
}

// RoleFromString parses a role name as it arrives from transport headers.
// Matching is exact; unknown names are rejected.
func RoleFromString(s string) (Role, error) {
	for role, name := range getValidRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role value is one of Customer, Owner, or Driver.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// It implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// User is an immutable snapshot of an authenticated identity: who is acting and
// in which role. The role never changes within a session, so the snapshot can be
// evaluated by pure authorization predicates without re-reading account state.
type User struct {
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// NewUser creates an identity snapshot, validating both the identifier and the role.
func NewUser(id kernel.UUID, role Role) (User, error) {
	if err := errors.Join(
		id.Validate(),
		role.Validate(),
	); err != nil {
		return User{}, err
	}

	return User{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the User was created through NewUser.
func (u User) Validate() error {
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the user's unique identifier.
func (u User) ID() kernel.UUID {
	return u.id
}

// Role returns the role the user holds for this session.
func (u User) Role() Role {
	return u.role
}
