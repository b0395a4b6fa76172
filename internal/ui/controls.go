package ui

import (
	"strconv"

	"mad-life/internal/core"
)

// adjustTarget returns the value a control moves to when nudged in direction.
// ok is false when the bounds leave no room to move.
func adjustTarget(ctrl core.ParameterControl, current, direction int) (target int, ok bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target = ctrl.Clamp(current + direction*step)
	return target, target != current
}

// paramValues flattens a snapshot into key -> value.
func paramValues(snapshot core.ParameterSnapshot) map[string]core.Parameter {
	values := map[string]core.Parameter{}
	for _, group := range snapshot.Groups {
		for _, param := range group.Params {
			values[param.Key] = param
		}
	}
	return values
}

// statusLine renders the read-only parameters that have no control.
func statusLine(snapshot core.ParameterSnapshot, controls []core.ParameterControl) []string {
	controlled := map[string]bool{}
	for _, c := range controls {
		controlled[c.Key] = true
	}
	var lines []string
	for _, group := range snapshot.Groups {
		for _, param := range group.Params {
			if controlled[param.Key] {
				continue
			}
			lines = append(lines, param.Label+": "+param.Value)
		}
	}
	return lines
}

func intValue(p core.Parameter) (int, bool) {
	if p.Type != core.ParamTypeInt {
		return 0, false
	}
	v, err := strconv.Atoi(p.Value)
	return v, err == nil
}
