package ui

import (
	"slices"
	"testing"

	"mad-life/internal/core"
)

func TestAdjustTargetRespectsBounds(t *testing.T) {
	ctrl := core.ParameterControl{Key: "density", Step: 5, Min: 0, Max: 100, HasMin: true, HasMax: true}
	if got, ok := adjustTarget(ctrl, 50, 1); !ok || got != 55 {
		t.Fatalf("got %d,%v", got, ok)
	}
	if got, ok := adjustTarget(ctrl, 98, 1); !ok || got != 100 {
		t.Fatalf("expected clamp to 100, got %d,%v", got, ok)
	}
	if _, ok := adjustTarget(ctrl, 100, 1); ok {
		t.Fatal("no room above max")
	}
	if _, ok := adjustTarget(ctrl, 0, -1); ok {
		t.Fatal("no room below min")
	}
	if got, ok := adjustTarget(core.ParameterControl{}, 3, -1); !ok || got != 2 {
		t.Fatalf("zero step should default to 1, got %d,%v", got, ok)
	}
}

func TestStatusLineSkipsControlled(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Clock",
		Params: []core.Parameter{
			{Key: "interval", Label: "Interval ms", Type: core.ParamTypeInt, Value: "500"},
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: "12"},
		},
	}}}
	lines := statusLine(snap, []core.ParameterControl{{Key: "interval"}})
	if !slices.Equal(lines, []string{"Generation: 12"}) {
		t.Fatalf("got %v", lines)
	}
	if v, ok := intValue(paramValues(snap)["interval"]); !ok || v != 500 {
		t.Fatalf("got %d,%v", v, ok)
	}
}
