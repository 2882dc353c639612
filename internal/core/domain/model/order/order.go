package order

import (
	"errors"
	"fmt"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory functions. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDriverAlreadyAssigned is returned when a driver tries to claim an order
	// that is already bound to another driver. Re-claiming is rejected rather than
	// silently overwriting the earlier assignment.
	ErrDriverAlreadyAssigned = errs.NewConflictError("order already has a driver")
)

// Order represents a customer's purchase request against one restaurant. It is
// the aggregate root that manages the order lifecycle from creation through
// cooking, pickup, and delivery.
//
// Order maintains these invariants:
//   - Must have valid customer and restaurant identifiers
//   - Must contain at least one item
//   - Total always equals the sum of the items' resolved prices
//   - Status transitions move forward along the lifecycle chain, never back
//   - The driver binding is set at most once
//
// The struct uses private fields to ensure encapsulation; mutate only through
// ChangeStatus and AssignDriver.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID kernel.UUID

	// restaurantID identifies the restaurant the order was placed against
	restaurantID kernel.UUID

	// driverID is the assigned driver's ID (nil until a driver claims the order)
	driverID *kernel.UUID

	// items is the ordered sequence of priced line items
	items []Item

	// total is the sum of the items' resolved prices
	total kernel.Money

	// status represents the current state in the order lifecycle
	status Status

	// createdAt is when the order was placed
	createdAt time.Time

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. The total is derived from the
// items rather than accepted from the caller, so the total invariant holds by
// construction.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the customer placing the order
//   - restaurantID: the restaurant the order is placed against
//   - items: the priced line items; must be non-empty and individually valid
//
// Returns the created order, or a validation error if any input is invalid.
func NewOrder(id kernel.UUID, customerID kernel.UUID, restaurantID kernel.UUID, items []Item) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		total = total.Add(item.Price())
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		restaurantID:  restaurantID,
		items:         items,
		total:         total,
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. It revalidates the
// identifier fields, the status, and the total invariant, so corrupted rows are
// rejected before they re-enter the domain.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	driverID *kernel.UUID,
	items []Item,
	total kernel.Money,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return nil, err
		}
	}

	sum := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		sum = sum.Add(item.Price())
	}
	if !sum.IsEqual(total) {
		return nil, errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("stored total %s does not match item sum %s", total, sum))
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		restaurantID:  restaurantID,
		driverID:      driverID,
		items:         items,
		total:         total,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory function. Call when reconstructing orders from external input.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identity of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the identifier of the restaurant the order targets.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// DriverID returns the assigned driver's ID, or nil while unclaimed.
func (o *Order) DriverID() *kernel.UUID {
	return o.driverID
}

// Items returns the order's line items in the sequence they were submitted.
func (o *Order) Items() []Item {
	return o.items
}

// Total returns the order total, always equal to the sum of item prices.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus moves the order to target along the lifecycle chain.
//
// The transition must be strictly forward; regressions and same-state moves are
// rejected with a validation error. Role-appropriateness of the target is the
// access policy's concern, not the aggregate's.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignDriver binds a driver to the order. The binding is independent of the
// status value and happens at most once: a second assignment fails with
// ErrDriverAlreadyAssigned instead of overwriting the first claim.
func (o *Order) AssignDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return ErrDriverAlreadyAssigned
	}

	o.driverID = &driverID
	return nil
}
