package order

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a forward-only state machine:
//
//	Pending ──> Confirmed ──> In Transit ──> Out for Delivery ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal; no further transitions are allowed.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is placed.
	StatusPending

	// StatusConfirmed indicates the order has been accepted for fulfillment.
	StatusConfirmed

	// StatusInTransit indicates the shipment has left the warehouse.
	StatusInTransit

	// StatusOutForDelivery indicates the shipment is on its final leg.
	StatusOutForDelivery

	// StatusDelivered indicates the shipment reached its destination. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before transit. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusPending:        "Pending",
		StatusConfirmed:      "Confirmed",
		StatusInTransit:      "In Transit",
		StatusOutForDelivery: "Out for Delivery",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:        "Pending",
		StatusConfirmed:      "Confirmed",
		StatusInTransit:      "In Transit",
		StatusOutForDelivery: "Out for Delivery",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
	}
}

// validNextStatuses enumerates the allowed transitions. Forward-only, no
// skipping; terminal states have no successors.
func validNextStatuses() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusInTransit, StatusCancelled},
		StatusInTransit:      {StatusOutForDelivery},
		StatusOutForDelivery: {StatusDelivered},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}
}

// StatusFromString parses the wire representation of a status
// (e.g., "Out for Delivery"). Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a recognized status", s))
}

// Validate checks if the Status value is one of the recognized statuses.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements the
// fmt.Stringer interface and is safe to call on any value, including
// invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further lifecycle transition is expected.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// IsActive reports whether the order still occupies inventory and,
// potentially, a driver. The inverse of IsTerminal for valid statuses.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// CanTransitionTo reports whether moving from s to next is an allowed
// lifecycle transition.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validNextStatuses()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates the move from s to next and returns the new status.
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, error) if next is not a recognized status or the transition is not
//     allowed from the current status
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot transition from %s to %s", s.String(), next.String()),
		)
	}

	return next, nil
}
