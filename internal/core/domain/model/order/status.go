package order

import (
	"fmt"

	"coffeeshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The usual progression is:
//
//	Pending ──> InPreparation ──> Shipped ──> Delivered
//	   │              │
//	   └──────────────┴──> Cancelled
//
// Status changes themselves are deliberately permissive: any valid status may
// be set from any other, matching the behavior callers of the café API rely
// on. What the diagram above gates is content editing — an order's items and
// customer can only change while the order is still Pending (see
// ValidateCanEditContent).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	// Only Pending orders accept content edits.
	Pending

	// InPreparation indicates the café has started preparing the order.
	InPreparation

	// Shipped indicates the order has left the café.
	Shipped

	// Delivered indicates the order reached the customer.
	Delivered

	// Cancelled indicates the order was abandoned before delivery.
	Cancelled
)

// getStatusStrings returns the wire names of all Status values, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Shipped:       "SHIPPED",
		Delivered:     "DELIVERED",
		Cancelled:     "CANCELLED",
	}
}

// getValidStatusStrings returns only the statuses an order may hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Shipped:       "SHIPPED",
		Delivered:     "DELIVERED",
		Cancelled:     "CANCELLED",
	}
}

// StatusFromString parses the wire name of a status ("PENDING",
// "IN_PREPARATION", ...). Returns a value-is-invalid error for anything else,
// including the empty string.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the valid lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. Implements fmt.Stringer and is
// safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ValidateCanEditContent checks whether an order in this status accepts
// content edits (item replacement, customer change).
//
// Only Pending allows editing; once an order is in fulfillment its content is
// frozen. Status changes remain possible in any state.
func (s Status) ValidateCanEditContent() error {
	if s != Pending {
		return fmt.Errorf("%w: order is %s", ErrOrderIsNotEditable, s)
	}
	return nil
}

// Transition returns the status the order should move to when the target
// status is requested.
//
// The policy is permissive: any valid target is accepted from any current
// state, including the current state itself (idempotent re-set). The only
// failure is an invalid target.
func (s Status) Transition(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	return target, nil
}
