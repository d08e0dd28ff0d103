// Package order implements the purchase-order aggregate and its custody
// workflow: the status state machine, the coupling of status changes with
// custody transfers, and the append-only audit events every transition
// produces.
//
// The aggregate enforces the core invariant of the system: an order always has
// exactly one status and exactly one custodian, and the two change only
// together through Transition. The state machine is total; any requested
// change has a defined outcome, either an applied transition or a typed
// rule violation.
package order
