// Package detector turns orientation and motion samples into tracker
// transitions. It is the sampling loop that sits in front of a
// sipfsm.StateMachine.
package detector

import (
	"github.com/hashicorp/go-hclog"

	"github.com/enetx/sipfsm"
)

// Sample is one reading from the bottle's motion sensor.
type Sample struct {
	// Tilt from upright, in degrees.
	Tilt float64
	// Motion is the deviation of the acceleration magnitude from 1 g.
	Motion float64
}

// Detector drives a state machine from samples. It is not safe for
// concurrent use.
type Detector struct {
	sm    sipfsm.StateMachine
	cfg   Config
	log   hclog.Logger
	quiet int
}

// New returns a detector driving sm. Zero fields of cfg take their values
// from DefaultConfig.
func New(sm sipfsm.StateMachine, cfg Config) (*Detector, error) {
	if err := cfg.withDefaults(); err != nil {
		return nil, err
	}

	return &Detector{
		sm:  sm,
		cfg: cfg,
		log: cfg.Logger.Named("detector"),
	}, nil
}

// State returns the current state of the driven machine.
func (d *Detector) State() sipfsm.State { return d.sm.Current() }

// Observe feeds one sample and returns the state after it was applied.
func (d *Detector) Observe(s Sample) sipfsm.State {
	tilted := s.Tilt >= d.cfg.DrinkTilt
	moving := s.Motion >= d.cfg.MotionThreshold

	switch d.sm.Current() {
	case sipfsm.Tracking:
		d.quiet = 0

		switch {
		case tilted:
			d.apply(sipfsm.BeginDrinking)
		case moving:
			d.apply(sipfsm.BeginMoving)
		}
	case sipfsm.Drinking:
		if tilted {
			d.quiet = 0
			break
		}

		if d.settled() {
			d.apply(sipfsm.EndDrinking)
		}
	case sipfsm.Moving:
		switch {
		case tilted:
			d.quiet = 0
			if d.apply(sipfsm.EndMoving) {
				d.apply(sipfsm.BeginDrinking)
			}
		case moving:
			d.quiet = 0
		case d.settled():
			d.apply(sipfsm.EndMoving)
		}
	}

	return d.sm.Current()
}

func (d *Detector) settled() bool {
	d.quiet++
	if d.quiet < d.cfg.SettleSamples {
		return false
	}

	d.quiet = 0

	return true
}

func (d *Detector) apply(event sipfsm.Event) bool {
	from := d.sm.Current()

	if err := d.sm.Trigger(event); err != nil {
		d.log.Warn("transition rejected", "event", event, "state", from.Label(), "error", err)
		return false
	}

	d.log.Debug("transition", "event", event, "from", from.Label(), "to", d.sm.Label())

	return true
}
