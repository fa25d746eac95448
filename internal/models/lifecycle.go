package models

import "time"

// EventState is the lifecycle state of an event at a given instant
type EventState string

const (
	EventStateOpen    EventState = "open"
	EventStateClosed  EventState = "closed"
	EventStateSettled EventState = "settled"
)

// State reports the lifecycle state of the event at now.
// A winner makes the event settled regardless of the clock.
func (e *Event) State(now time.Time) EventState {
	if e.WinnerOptionID != nil {
		return EventStateSettled
	}
	if now.Before(e.Deadline) {
		return EventStateOpen
	}
	return EventStateClosed
}

// AcceptsBets reports whether a bet placed at now may be accepted
func (e *Event) AcceptsBets(now time.Time) bool {
	return e.State(now) == EventStateOpen
}
