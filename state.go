package sipfsm

import "github.com/enetx/g"

// States returns every state in declaration order.
func States() g.Slice[State] { return g.SliceOf(Tracking, Drinking, Moving) }

// Label returns the stable debug label of the state.
// A value outside the enumeration yields "UNKNOWN".
func (s State) Label() g.String {
	switch s {
	case Tracking:
		return "TRACK"
	case Drinking:
		return "DRINKING"
	case Moving:
		return "MOVING"
	}

	return "UNKNOWN"
}

func (s State) String() string { return string(s.Label()) }

// ParseState is the inverse of Label. Matching ignores case.
func ParseState(label g.String) (State, error) {
	switch label.Trim().Upper() {
	case "TRACK":
		return Tracking, nil
	case "DRINKING":
		return Drinking, nil
	case "MOVING":
		return Moving, nil
	}

	return Tracking, &ErrUnknownState{Label: label}
}

// MarshalText implements the encoding.TextMarshaler interface.
func (s State) MarshalText() ([]byte, error) {
	if !States().Contains(s) {
		return nil, &ErrUnknownState{Label: s.Label()}
	}

	return []byte(s.Label()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
// On failure the receiver is left untouched.
func (s *State) UnmarshalText(text []byte) error {
	parsed, err := ParseState(g.String(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}
