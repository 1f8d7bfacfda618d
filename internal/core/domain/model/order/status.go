package order

import (
	"fmt"

	"pizzeria/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct kitchen workflow.
//
// State transitions are strictly linear:
//
//	Pending ──> InPreparation ──> Ready ──> Completed
//
// No transition skips a stage, none regresses, and Completed is terminal.
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are queued and waiting for the kitchen.
	Pending

	// InPreparation indicates the kitchen has claimed the order and is
	// preparing it. Entering this status stamps the order's startedAt.
	InPreparation

	// Ready indicates the order is done and waiting for pickup.
	Ready

	// Completed indicates the order has been handed over.
	// This is a final state with no further transitions allowed.
	Completed
)

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Completed:     "COMPLETED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "PENDING",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Completed:     "COMPLETED",
	}
}

// getNextStatuses returns the transition table of the state machine:
// for each status, the single legal successor. Completed has no entry,
// which makes it terminal.
func getNextStatuses() map[Status]Status {
	return map[Status]Status{
		Pending:       InPreparation,
		InPreparation: Ready,
		Ready:         Completed,
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InPreparation, Ready, Completed.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g. database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "IN_PREPARATION".
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones, for which it returns "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a wire name ("PENDING", "IN_PREPARATION", "READY",
// "COMPLETED") back into a Status. Used when reconstructing orders from
// persistence or parsing caller input.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Description returns the short human-readable label for the status,
// e.g. "In preparation".
func (s Status) Description() string {
	switch s {
	case Pending:
		return "Pending"
	case InPreparation:
		return "In preparation"
	case Ready:
		return "Ready"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}

// CustomerMessage returns the fixed message shown to customers polling
// an order in this status.
func (s Status) CustomerMessage() string {
	switch s {
	case Pending:
		return "Your order is queued and will be taken soon"
	case InPreparation:
		return "The pizzaiolo is preparing your order"
	case Ready:
		return "Your order is ready for pickup!"
	case Completed:
		return "Order completed. Thank you!"
	default:
		return ""
	}
}

// CanTransitionTo reports whether moving from s to target is a legal
// transition. It is a pure lookup with no side effects and never fails:
// any pair outside the linear path simply reports false.
func (s Status) CanTransitionTo(target Status) bool {
	next, ok := getNextStatuses()[s]
	return ok && next == target
}

// TransitionTo returns the target status if the transition is legal.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, *errs.IllegalTransitionError) carrying the rejected (from, to)
//     pair otherwise
//
// This method is used by the Order transition methods to enforce the
// state machine.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return 0, errs.NewIllegalTransitionError(s.String(), target.String())
	}
	return target, nil
}
