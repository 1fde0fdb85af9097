package sipfsm

import "github.com/enetx/g"

// StateMachine is the surface shared by Tracker and SyncTracker.
type StateMachine interface {
	Trigger(Event) error
	Can(Event) bool
	BeginDrinking() bool
	EndDrinking() bool
	BeginMoving() bool
	EndMoving() bool
	Current() State
	Label() g.String
	ToDOT() g.String
}

var (
	_ StateMachine = (*Tracker)(nil)
	_ StateMachine = (*SyncTracker)(nil)
)
