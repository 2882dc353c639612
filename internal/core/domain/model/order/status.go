package order

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine over the linear chain
//
//	Pending ──> Cooking ──> Cooked ──> PickedUp ──> Delivered
//
// Transitions only ever move forward along the chain; regressions and
// same-state transitions are rejected. Skipping an intermediate state is
// allowed — the chain defines reachability, not mandatory stops — so an owner
// may move a Pending order straight to Cooked.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and transport.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for the restaurant to start cooking.
	Pending

	// Cooking indicates the restaurant is preparing the order.
	Cooking

	// Cooked indicates the order is ready for a driver to pick up.
	Cooked

	// PickedUp indicates a driver has collected the order.
	PickedUp

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Cooking:   "Cooking",
		Cooked:    "Cooked",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Cooking:   "Cooking",
		Cooked:    "Cooked",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
	}
}

// StatusFromString parses a status name as it arrives from transport.
// Matching is exact; unknown names are rejected.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five lifecycle states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// TransitionTo validates a transition from the current status to target and
// returns the new status.
//
// Valid transitions move strictly forward along the chain; any regression,
// same-state transition, or transition involving an invalid status fails.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, error) when the transition is not allowed
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}

	if target <= s {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot move from %s to %s", s.String(), target.String()),
		)
	}

	return target, nil
}
