package sipfsm

import "github.com/enetx/g"

// Trigger is the thread-safe version of Tracker.Trigger.
// Hooks run while the write lock is held and must not call back into sf.
func (sf *SyncTracker) Trigger(event Event) error {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	return sf.tracker.Trigger(event)
}

// Can is the thread-safe version of Tracker.Can.
func (sf *SyncTracker) Can(event Event) bool {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.tracker.Can(event)
}

func (sf *SyncTracker) BeginDrinking() bool { return sf.Trigger(BeginDrinking) == nil }

func (sf *SyncTracker) EndDrinking() bool { return sf.Trigger(EndDrinking) == nil }

func (sf *SyncTracker) BeginMoving() bool { return sf.Trigger(BeginMoving) == nil }

func (sf *SyncTracker) EndMoving() bool { return sf.Trigger(EndMoving) == nil }

// Current is the thread-safe version of Tracker.Current.
func (sf *SyncTracker) Current() State {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.tracker.Current()
}

// Label is the thread-safe version of Tracker.Label.
func (sf *SyncTracker) Label() g.String {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.tracker.Label()
}

// OnTransition is the thread-safe version of Tracker.OnTransition.
func (sf *SyncTracker) OnTransition(hook TransitionHook) *SyncTracker {
	sf.mu.Lock()
	defer sf.mu.Unlock()

	sf.tracker.OnTransition(hook)

	return sf
}

// ToDOT is the thread-safe version of Tracker.ToDOT.
func (sf *SyncTracker) ToDOT() g.String {
	sf.mu.RLock()
	defer sf.mu.RUnlock()

	return sf.tracker.ToDOT()
}
