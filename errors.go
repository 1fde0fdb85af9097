package sipfsm

import (
	"fmt"

	"github.com/enetx/g"
)

// ErrInvalidTransition is returned by Trigger when the event has no edge
// from the current state. The tracker's state is left unchanged.
type ErrInvalidTransition struct {
	From  State
	Event Event
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("sipfsm: no matching transition for event %q from state %q", e.Event, e.From)
}

// ErrUnknownState is returned when a label does not name one of the
// tracker's states.
type ErrUnknownState struct {
	Label g.String
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("sipfsm: unknown state %q", e.Label)
}
