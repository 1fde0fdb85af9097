package detector

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
	"github.com/hashicorp/go-hclog"
)

// Config tunes how samples are classified.
type Config struct {
	// DrinkTilt is the tilt from upright, in degrees, at which the bottle
	// counts as being drunk from.
	DrinkTilt float64
	// MotionThreshold is the deviation from 1 g above which the bottle
	// counts as moving.
	MotionThreshold float64
	// SettleSamples is how many consecutive quiet samples end a drink or a move.
	SettleSamples int
	// Logger receives transition and rejection logs. Defaults to a null logger.
	Logger hclog.Logger
}

// DefaultConfig returns the thresholds used when a field is left zero.
func DefaultConfig() Config {
	return Config{
		DrinkTilt:       45,
		MotionThreshold: 0.15,
		SettleSamples:   5,
	}
}

func (c *Config) withDefaults() error {
	if err := mergo.Merge(c, DefaultConfig()); err != nil {
		return fmt.Errorf("detector: apply config defaults: %w", err)
	}

	if c.Logger == nil {
		c.Logger = hclog.NewNullLogger()
	}

	return c.validate()
}

func (c *Config) validate() error {
	var errs []error

	if c.DrinkTilt < 0 || c.DrinkTilt > 180 {
		errs = append(errs, fmt.Errorf("drink tilt %v out of range [0, 180]", c.DrinkTilt))
	}

	if c.MotionThreshold < 0 {
		errs = append(errs, fmt.Errorf("motion threshold %v is negative", c.MotionThreshold))
	}

	if c.SettleSamples < 0 {
		errs = append(errs, fmt.Errorf("settle samples %d is negative", c.SettleSamples))
	}

	if len(errs) > 0 {
		return fmt.Errorf("detector: invalid config: %w", errors.Join(errs...))
	}

	return nil
}
