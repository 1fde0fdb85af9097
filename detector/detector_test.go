package detector

import (
	"bytes"
	"testing"

	"github.com/enetx/g"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enetx/sipfsm"
)

var (
	rest  = Sample{Tilt: 2, Motion: 0.01}
	shake = Sample{Tilt: 10, Motion: 0.6}
	sip   = Sample{Tilt: 80, Motion: 0.2}
)

func newDetector(t *testing.T, sm sipfsm.StateMachine, cfg Config) *Detector {
	t.Helper()

	d, err := New(sm, cfg)
	require.NoError(t, err)

	return d
}

func feed(d *Detector, s Sample, n int) sipfsm.State {
	var state sipfsm.State
	for range n {
		state = d.Observe(s)
	}

	return state
}

func TestNew_AppliesDefaults(t *testing.T) {
	d := newDetector(t, sipfsm.New(), Config{MotionThreshold: 0.3})

	assert.Equal(t, 45.0, d.cfg.DrinkTilt)
	assert.Equal(t, 0.3, d.cfg.MotionThreshold)
	assert.Equal(t, 5, d.cfg.SettleSamples)
	assert.NotNil(t, d.cfg.Logger)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"negative tilt", Config{DrinkTilt: -1}},
		{"tilt past inverted", Config{DrinkTilt: 200}},
		{"negative motion", Config{MotionThreshold: -0.1}},
		{"negative settle", Config{SettleSamples: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(sipfsm.New(), tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestObserve_RestStaysTracking(t *testing.T) {
	d := newDetector(t, sipfsm.New(), Config{})

	assert.Equal(t, sipfsm.Tracking, feed(d, rest, 20))
}

func TestObserve_DrinkCycle(t *testing.T) {
	tr := sipfsm.New()
	d := newDetector(t, tr, Config{SettleSamples: 3})

	assert.Equal(t, sipfsm.Drinking, d.Observe(sip))
	assert.Equal(t, sipfsm.Drinking, feed(d, sip, 4))

	// Lowering the bottle ends the drink only once it has settled.
	assert.Equal(t, sipfsm.Drinking, feed(d, rest, 2))
	assert.Equal(t, sipfsm.Tracking, d.Observe(rest))
	assert.Equal(t, sipfsm.Tracking, tr.Current())
	assert.Equal(t, tr.Current(), d.State())
}

func TestObserve_DrinkInterruptedResetsSettle(t *testing.T) {
	d := newDetector(t, sipfsm.New(), Config{SettleSamples: 3})

	d.Observe(sip)
	feed(d, rest, 2)
	d.Observe(sip)

	assert.Equal(t, sipfsm.Drinking, feed(d, rest, 2))
	assert.Equal(t, sipfsm.Tracking, d.Observe(rest))
}

func TestObserve_MoveCycle(t *testing.T) {
	d := newDetector(t, sipfsm.New(), Config{SettleSamples: 2})

	assert.Equal(t, sipfsm.Moving, d.Observe(shake))
	assert.Equal(t, sipfsm.Moving, feed(d, shake, 3))
	assert.Equal(t, sipfsm.Moving, d.Observe(rest))
	assert.Equal(t, sipfsm.Tracking, d.Observe(rest))
}

func TestObserve_MoveThenDrinkPassesThroughTracking(t *testing.T) {
	var path g.Slice[sipfsm.State]

	tr := sipfsm.New().OnTransition(func(_, to sipfsm.State, _ sipfsm.Event) { path.Push(to) })
	d := newDetector(t, tr, Config{})

	d.Observe(shake)
	assert.Equal(t, sipfsm.Drinking, d.Observe(sip))
	assert.Equal(t, []sipfsm.State{sipfsm.Moving, sipfsm.Tracking, sipfsm.Drinking}, []sipfsm.State(path))
}

func TestObserve_LogsTransitions(t *testing.T) {
	var buf bytes.Buffer

	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Level:  hclog.Debug,
		Output: &buf,
	})

	d := newDetector(t, sipfsm.New(), Config{Logger: logger})
	d.Observe(sip)

	assert.Contains(t, buf.String(), "test.detector")
	assert.Contains(t, buf.String(), "to=DRINKING")
}

// stuck refuses every transition, as a machine driven by someone else would.
type stuck struct {
	*sipfsm.Tracker
}

func (stuck) Trigger(event sipfsm.Event) error {
	return &sipfsm.ErrInvalidTransition{From: sipfsm.Tracking, Event: event}
}

func TestObserve_RejectedTransitionIsLogged(t *testing.T) {
	var buf bytes.Buffer

	logger := hclog.New(&hclog.LoggerOptions{Level: hclog.Warn, Output: &buf})

	d := newDetector(t, stuck{sipfsm.New()}, Config{Logger: logger})

	assert.Equal(t, sipfsm.Tracking, d.Observe(sip))
	assert.Contains(t, buf.String(), "transition rejected")
	assert.Contains(t, buf.String(), "event=begin_drinking")
}
