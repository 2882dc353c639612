package services

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
)

// AccessPolicy is the domain service answering the two authorization questions
// the order lifecycle asks: may this actor view this order, and may this actor
// move an order to a given status.
//
// Both predicates are pure functions over immutable snapshots; they perform no
// I/O and hold no state. The policy is fail-closed: a role outside Customer,
// Owner, and Driver is never granted anything.
type AccessPolicy struct{}

// NewAccessPolicy creates an access policy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanView reports whether the actor may see the order.
//
// Visibility rules:
//   - A Customer sees only their own orders
//   - A Driver sees only orders assigned to them
//   - An Owner sees only orders placed against restaurants they own; the
//     restaurant's owner identity is passed in because the order aggregate
//     does not carry it
//
// Any other role is denied.
func (AccessPolicy) CanView(actor user.User, o *order.Order, restaurantOwnerID kernel.UUID) bool {
	switch actor.Role() {
	case user.Customer:
		return o.CustomerID().IsEqual(actor.ID())
	case user.Driver:
		return o.DriverID() != nil && o.DriverID().IsEqual(actor.ID())
	case user.Owner:
		return restaurantOwnerID.IsEqual(actor.ID())
	default:
		return false
	}
}

// transitionTable maps each role to the statuses it may move an order to.
// Customers appear nowhere: they can never transition an order.
func transitionTable() map[user.Role][]order.Status {
	return map[user.Role][]order.Status{
		user.Owner:  {order.Cooking, order.Cooked},
		user.Driver: {order.PickedUp, order.Delivered},
	}
}

// CanTransition reports whether the role may set an order to the target status.
//
// This predicate validates role-appropriateness of the target only; whether the
// transition is reachable from the order's current status is enforced by the
// aggregate's state machine.
func (AccessPolicy) CanTransition(role user.Role, target order.Status) bool {
	for _, allowed := range transitionTable()[role] {
		if allowed == target {
			return true
		}
	}
	return false
}
