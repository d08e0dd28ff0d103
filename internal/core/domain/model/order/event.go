package order

import (
	"errors"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// ErrEventIsNotConstructed is returned when an Event instance was not created
// by the order aggregate or restored from persistence.
var ErrEventIsNotConstructed = errors.New("Event must be created by the order aggregate or via RestoreEvent")

// Event is an immutable audit record of a single order transition.
// Events are created only by the Order aggregate when a transition is applied
// and are never mutated or deleted once persisted. The per-order sequence
// equals the order version the transition produced, so the event log replays
// the exact walk of the state machine.
type Event struct {
	// id is the unique identifier of the event
	id kernel.UUID

	// orderID identifies the order the event belongs to
	orderID kernel.UUID

	// sequence is the per-order position of the event, starting at 1
	sequence int

	// recordedAt is the time the transition was applied
	recordedAt time.Time

	// actorID identifies the actor who requested the transition
	actorID kernel.UUID

	// fromStatus and toStatus capture the status change
	fromStatus Status
	toStatus   Status

	// fromCustodianID and toCustodianID capture the custody change;
	// equal when the transition kept custody fixed
	fromCustodianID kernel.UUID
	toCustodianID   kernel.UUID

	// description is a free-text summary for display in the audit trail
	description string

	// isConstructed ensures the event was properly created
	isConstructed bool
}

// newEvent assembles an event for a transition being applied by the aggregate.
// Only the Order aggregate calls this; external packages restore events from
// persistence via RestoreEvent.
func newEvent(
	orderID kernel.UUID,
	sequence int,
	recordedAt time.Time,
	actorID kernel.UUID,
	fromStatus, toStatus Status,
	fromCustodianID, toCustodianID kernel.UUID,
	description string,
) Event {
	return Event{
		id:              kernel.NewUUID(),
		orderID:         orderID,
		sequence:        sequence,
		recordedAt:      recordedAt,
		actorID:         actorID,
		fromStatus:      fromStatus,
		toStatus:        toStatus,
		fromCustodianID: fromCustodianID,
		toCustodianID:   toCustodianID,
		description:     description,
		isConstructed:   true,
	}
}

// RestoreEvent reconstructs an event from persistence.
// It validates identifiers, sequence, and the recorded statuses, but does not
// re-run transition rules: the log records what happened, including walks that
// predate rule changes.
func RestoreEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	sequence int,
	recordedAt time.Time,
	actorID kernel.UUID,
	fromStatus, toStatus Status,
	fromCustodianID, toCustodianID kernel.UUID,
	description string,
) (Event, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		actorID.Validate(),
		toStatus.Validate(),
		fromCustodianID.Validate(),
		toCustodianID.Validate(),
	); err != nil {
		return Event{}, err
	}

	if sequence < 1 {
		return Event{}, errs.NewValueIsInvalidError("sequence")
	}

	return Event{
		id:              id,
		orderID:         orderID,
		sequence:        sequence,
		recordedAt:      recordedAt,
		actorID:         actorID,
		fromStatus:      fromStatus,
		toStatus:        toStatus,
		fromCustodianID: fromCustodianID,
		toCustodianID:   toCustodianID,
		description:     description,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Event was created by the aggregate or RestoreEvent.
func (e Event) Validate() error {
	if !e.isConstructed {
		return ErrEventIsNotConstructed
	}
	return nil
}

// ID returns the event's unique identifier.
func (e Event) ID() kernel.UUID {
	return e.id
}

// OrderID returns the identifier of the order the event belongs to.
func (e Event) OrderID() kernel.UUID {
	return e.orderID
}

// Sequence returns the per-order position of the event, starting at 1.
func (e Event) Sequence() int {
	return e.sequence
}

// RecordedAt returns the time the transition was applied.
func (e Event) RecordedAt() time.Time {
	return e.recordedAt
}

// ActorID returns the identifier of the actor who requested the transition.
func (e Event) ActorID() kernel.UUID {
	return e.actorID
}

// FromStatus returns the order status before the transition.
// The creation event reports Unknown here.
func (e Event) FromStatus() Status {
	return e.fromStatus
}

// ToStatus returns the order status after the transition.
func (e Event) ToStatus() Status {
	return e.toStatus
}

// FromCustodianID returns the custodian before the transition.
func (e Event) FromCustodianID() kernel.UUID {
	return e.fromCustodianID
}

// ToCustodianID returns the custodian after the transition.
func (e Event) ToCustodianID() kernel.UUID {
	return e.toCustodianID
}

// Description returns the free-text summary of the transition.
func (e Event) Description() string {
	return e.description
}
