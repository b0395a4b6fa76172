package life

import (
	"errors"
	"testing"
	"time"

	"mad-life/internal/core"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	if cfg.Interval() != 500*time.Millisecond {
		t.Fatalf("interval %v", cfg.Interval())
	}
}

func TestValidateRejects(t *testing.T) {
	mutations := map[string]func(*Config){
		"zero width":       func(c *Config) { c.Width = 0 },
		"negative height":  func(c *Config) { c.Height = -2 },
		"zero interval":    func(c *Config) { c.IntervalMS = 0 },
		"negative density": func(c *Config) { c.Density = -1 },
		"density over 100": func(c *Config) { c.Density = 101 },
	}
	for name, mutate := range mutations {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, core.ErrInvalidConfig) {
			t.Fatalf("%s: err=%v, expected ErrInvalidConfig", name, err)
		}
	}
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]string{"w": "40", "h": "20", "interval": "125", "density": "0", "seed": "-9", "other": "x"})
	if err != nil {
		t.Fatal(err)
	}
	want := Config{Width: 40, Height: 20, IntervalMS: 125, Density: 0, Seed: -9}
	if cfg != want {
		t.Fatalf("got %+v, expected %+v", cfg, want)
	}

	if cfg, err := FromMap(nil); err != nil || cfg != DefaultConfig() {
		t.Fatalf("nil map should give defaults, got %+v %v", cfg, err)
	}
}

func TestFromMapRejects(t *testing.T) {
	for _, m := range []map[string]string{
		{"w": "wide"},
		{"interval": "-5"},
		{"density": "150"},
		{"seed": "1.5"},
	} {
		if _, err := FromMap(m); !errors.Is(err, core.ErrInvalidConfig) {
			t.Fatalf("%v: err=%v", m, err)
		}
	}
}
