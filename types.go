package sipfsm

import (
	"sync"

	"github.com/enetx/g"
)

type (
	// State is one of the three conditions the tracker can be in.
	State uint8
	// Event names a transition operation.
	Event g.String

	// TransitionHook is called after a successful transition.
	// It is never called for a rejected transition.
	TransitionHook func(from, to State, event Event)

	// transition is an edge of the fixed transition table.
	transition struct {
		event Event
		to    State
	}

	// Tracker holds the current state of the monitored object.
	// The zero value is a valid tracker in the Tracking state.
	//
	// Tracker is not safe for concurrent use; see Sync.
	Tracker struct {
		current      State
		onTransition g.Slice[TransitionHook]
	}

	// SyncTracker is a thread-safe wrapper around a Tracker.
	// Transitions take the write lock, queries take the read lock.
	SyncTracker struct {
		tracker *Tracker
		mu      sync.RWMutex
	}
)

const (
	// Tracking is the initial state: the object rests and is observed.
	Tracking State = iota
	// Drinking means consumption is in progress.
	Drinking
	// Moving means the object is displaced without consumption.
	Moving
)

const (
	BeginDrinking Event = "begin_drinking"
	EndDrinking   Event = "end_drinking"
	BeginMoving   Event = "begin_moving"
	EndMoving     Event = "end_moving"
)

// transitions is the complete transition graph. Drinking and Moving are
// only connected through Tracking.
var transitions = g.Map[State, g.Slice[transition]]{
	Tracking: {
		{event: BeginDrinking, to: Drinking},
		{event: BeginMoving, to: Moving},
	},
	Drinking: {
		{event: EndDrinking, to: Tracking},
	},
	Moving: {
		{event: EndMoving, to: Tracking},
	},
}
