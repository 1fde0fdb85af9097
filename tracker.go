// Package sipfsm tracks what is happening to an instrumented drinking bottle.
// A Tracker is always in exactly one of three states: Tracking (at rest and
// observed), Drinking or Moving. Drinking and Moving are entered from and left
// back to Tracking only; an illegal transition is reported, never applied.
// It is built with types and utilities from the github.com/enetx/g library.
package sipfsm

import "github.com/enetx/g"

// New returns a tracker in the Tracking state.
func New() *Tracker { return new(Tracker) }

// Current returns the current state.
func (t *Tracker) Current() State { return t.current }

// Label returns the debug label of the current state.
func (t *Tracker) Label() g.String { return t.current.Label() }

// OnTransition registers a hook called after every successful transition.
// Hooks run synchronously in registration order.
func (t *Tracker) OnTransition(hook TransitionHook) *Tracker {
	if hook != nil {
		t.onTransition.Push(hook)
	}

	return t
}

// Can reports whether event is legal from the current state.
func (t *Tracker) Can(event Event) bool {
	_, ok := t.lookup(event)
	return ok
}

// Trigger attempts the transition named by event.
// If the current state has no edge for it, the state is left unchanged and
// an *ErrInvalidTransition is returned.
func (t *Tracker) Trigger(event Event) error {
	next, ok := t.lookup(event)
	if !ok {
		return &ErrInvalidTransition{From: t.current, Event: event}
	}

	previous := t.current
	t.current = next

	for hook := range t.onTransition.Iter() {
		hook(previous, next, event)
	}

	return nil
}

// BeginDrinking moves Tracking to Drinking.
func (t *Tracker) BeginDrinking() bool { return t.Trigger(BeginDrinking) == nil }

// EndDrinking moves Drinking to Tracking.
func (t *Tracker) EndDrinking() bool { return t.Trigger(EndDrinking) == nil }

// BeginMoving moves Tracking to Moving.
func (t *Tracker) BeginMoving() bool { return t.Trigger(BeginMoving) == nil }

// EndMoving moves Moving to Tracking.
func (t *Tracker) EndMoving() bool { return t.Trigger(EndMoving) == nil }

// Sync wraps the tracker for use from multiple goroutines.
// The tracker must not be used directly afterwards.
func (t *Tracker) Sync() *SyncTracker { return &SyncTracker{tracker: t} }

func (t *Tracker) lookup(event Event) (State, bool) {
	for tr := range transitions[t.current].Iter() {
		if tr.event == event {
			return tr.to, true
		}
	}

	return t.current, false
}
