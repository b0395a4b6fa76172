package life

import (
	"fmt"
	"strconv"
	"time"

	"mad-life/internal/core"
)

// Config holds the tunables of a Life session.
type Config struct {
	Width  int
	Height int
	// IntervalMS is the delay between generations while the clock runs.
	IntervalMS int
	// Density is the seeding probability as a percentage in [0,100].
	Density int
	Seed    int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 30, Height: 30, IntervalMS: 500, Density: 50, Seed: 42}
}

// Interval returns IntervalMS as a duration.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// Validate rejects non-positive dimensions or interval and densities outside
// [0,100].
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("life: dimensions %dx%d: %w", c.Height, c.Width, core.ErrInvalidConfig)
	}
	if err := validateInterval(c.IntervalMS); err != nil {
		return err
	}
	return validateDensity(c.Density)
}

func validateInterval(ms int) error {
	if ms <= 0 {
		return fmt.Errorf("life: interval %dms: %w", ms, core.ErrInvalidConfig)
	}
	return nil
}

// FromMap overlays flag-style key/value pairs (w, h, interval, density, seed)
// onto the default configuration. Unknown keys are ignored; malformed or
// out-of-range values are rejected.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	ints := []struct {
		key string
		dst *int
	}{
		{"w", &c.Width},
		{"h", &c.Height},
		{"interval", &c.IntervalMS},
		{"density", &c.Density},
	}
	for _, f := range ints {
		v, ok := cfg[f.key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("life: %s=%q: %w", f.key, v, core.ErrInvalidConfig)
		}
		*f.dst = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("life: seed=%q: %w", v, core.ErrInvalidConfig)
		}
		c.Seed = parsed
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
