package app

import (
	"flag"
	"fmt"
	"strings"

	"mad-life/internal/sims/life"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scale   int
	Verbose bool
	Set     KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 16}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log session events")
	fs.Var(&c.Set, "set", "simulation override in key=value form (w, h, interval, density, seed; repeatable)")
}

// SimConfig resolves the -set overrides into a validated life configuration.
func (c *Config) SimConfig() (life.Config, error) {
	m, err := c.Set.Map()
	if err != nil {
		return life.Config{}, err
	}
	return life.FromMap(m)
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set implements flag.Value.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map returns the pairs as a map; later duplicates win.
func (l KVList) Map() (map[string]string, error) {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("malformed override %q", kv)
		}
		m[key] = value
	}
	return m, nil
}
