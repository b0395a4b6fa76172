package life

import (
	"strconv"

	"mad-life/internal/core"
)

// Parameters implements core.ParameterProvider for the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", s.grid.Width()),
				intParam("h", "Height", s.grid.Height()),
				intParam("density", "Seed density %", s.cfg.Density),
			},
		},
		{
			Name: "Clock",
			Params: []core.Parameter{
				intParam("interval", "Interval ms", s.cfg.IntervalMS),
				boolParam("running", "Running", s.clock.state == Running),
				intParam("generation", "Generation", int(s.generation)),
				intParam("population", "Population", s.grid.Population()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls implements core.ParameterControlsProvider.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "interval", Label: "Interval ms", Step: 50, Min: 10, HasMin: true},
		{Key: "density", Label: "Seed density %", Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true},
		{Key: "h", Label: "Height", Step: 1, Min: 1, HasMin: true},
		{Key: "w", Label: "Width", Step: 1, Min: 1, HasMin: true},
	}
}

// SetIntParameter implements core.IntParameterSetter. Invalid values are
// rejected and reported as false.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "interval":
		return s.SetInterval(value) == nil
	case "density":
		return s.SetDensity(value) == nil
	case "h":
		return s.Resize(value, s.Size().W) == nil
	case "w":
		return s.Resize(s.Size().H, value) == nil
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
