package order

import (
	"errors"
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Transition rule violations. Handlers classify these with errors.Is and the
// HTTP adapter maps them onto response codes.
var (
	// ErrInvalidTransition is returned when the requested (status, custodian)
	// change is not reachable from the current status in one step, or when a
	// custodian change was supplied or omitted incorrectly.
	ErrInvalidTransition = errors.New("transition is not allowed from the current status")

	// ErrOrderTerminal is returned when the order is already in a terminal
	// status (Rejected or Completed) and can never change again.
	ErrOrderTerminal = errors.New("order is in a terminal status")

	// ErrCustodianRoleNotEligible is returned when the proposed new custodian's
	// role may not hold custody for the requested status.
	ErrCustodianRoleNotEligible = errors.New("custodian role is not eligible for the requested status")
)

// Status represents the lifecycle state of a purchase order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct custody workflow.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──> Shipped ──> Delivered ──> Completed
//	          │
//	          └──> Rejected
//
// Rejected and Completed are terminal; no transition leaves them.
// The Shipped and Delivered steps transfer custody to a new actor;
// all other steps keep the custodian fixed.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// The target manufacturer holds custody and may accept or reject.
	Pending

	// Accepted indicates the manufacturer has accepted the order.
	Accepted

	// Rejected indicates the manufacturer has declined the order.
	// This is a terminal status.
	Rejected

	// Shipped indicates the order has left the manufacturer.
	// Custody passes to a supplier or logistics carrier.
	Shipped

	// Delivered indicates the order has reached its next handler.
	// Custody passes to a supplier or logistics carrier.
	Delivered

	// Completed indicates the order has been finalized by its last custodian.
	// This is a terminal status.
	Completed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Rejected:  "Rejected",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Completed: "Completed",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Rejected:  "Rejected",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Completed: "Completed",
	}
}

// getTransitions returns the full transition table of the state machine.
// Every status absent from the map (or mapped to an empty set) is terminal
// or unreachable; the table is the single source of truth for reachability.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Accepted, Rejected},
		Accepted:  {Shipped},
		Shipped:   {Delivered},
		Delivered: {Completed},
	}
}

// StatusFromString parses a Status from its string name, matching the values
// produced by String(). Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Accepted, Rejected, Shipped, Delivered, Completed.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Orders in a terminal status are immutable.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Completed
}

// CanTransitionTo reports whether the state machine permits moving from
// this status to next in a single step.
//
// The check is total: any (status, next) pair has a defined outcome,
// including invalid and terminal source statuses, which never permit
// any transition.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RequiresCustodyTransfer reports whether entering this status must be
// accompanied by a change of custodian. Shipping and delivering hand the
// order to a new party; every other step keeps custody fixed.
func (s Status) RequiresCustodyTransfer() bool {
	return s == Shipped || s == Delivered
}
