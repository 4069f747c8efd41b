package ui

import (
	"testing"

	"agent-ecosystem/internal/core"
)

type recordingSetter struct {
	ints   map[string]int
	floats map[string]float64
	reject bool
}

func (r *recordingSetter) SetIntParameter(key string, v int) bool {
	if r.reject {
		return false
	}
	if r.ints == nil {
		r.ints = map[string]int{}
	}
	r.ints[key] = v
	return true
}

func (r *recordingSetter) SetFloatParameter(key string, v float64) bool {
	if r.reject {
		return false
	}
	if r.floats == nil {
		r.floats = map[string]float64{}
	}
	r.floats[key] = v
	return true
}

func sampleStates() []controlState {
	states := newControlStates([]core.ParameterControl{
		{Key: "tick_ms", Label: "Tick (ms)", Type: core.ParamTypeInt, Step: 50, Min: 50, Max: 2000, HasMin: true, HasMax: true},
		{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "missing", Label: "Missing", Type: core.ParamTypeInt},
	})
	refreshControlValues(states, core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "test",
		Params: []core.Parameter{
			{Key: "tick_ms", Value: "250"},
			{Key: "density", Value: "0.12"},
		},
	}}})
	return states
}

func TestRefreshControlValues(t *testing.T) {
	states := sampleStates()
	if !states[0].hasValue || states[0].intValue != 250 || states[0].value != "250" {
		t.Fatalf("unexpected int state %+v", states[0])
	}
	if !states[1].hasValue || states[1].value != "0.12" {
		t.Fatalf("unexpected float state %+v", states[1])
	}
	if states[2].hasValue || states[2].value != "--" {
		t.Fatalf("missing parameter should render placeholder, got %+v", states[2])
	}
}

func TestApplyAdjustmentClampsToBounds(t *testing.T) {
	states := sampleStates()
	setter := &recordingSetter{}

	if !applyAdjustment(&states[0], 1, setter, setter) || setter.ints["tick_ms"] != 300 {
		t.Fatalf("expected tick_ms 300, got %v", setter.ints)
	}
	states[0].intValue = 60
	if !applyAdjustment(&states[0], -1, setter, setter) || setter.ints["tick_ms"] != 50 {
		t.Fatalf("expected clamp to 50, got %v", setter.ints)
	}
	if applyAdjustment(&states[0], -1, setter, setter) {
		t.Fatal("adjusting past the minimum should be a no-op")
	}
	if canAdjust(&states[0], -1, setter, setter) {
		t.Fatal("minus should be disabled at the minimum")
	}

	if !applyAdjustment(&states[1], -1, setter, setter) {
		t.Fatal("float adjustment failed")
	}
	if got := setter.floats["density"]; got < 0.1099 || got > 0.1101 {
		t.Fatalf("expected density 0.11, got %v", got)
	}
	if states[1].value != "0.11" {
		t.Fatalf("unexpected formatted value %q", states[1].value)
	}
	if applyAdjustment(&states[2], 1, setter, setter) {
		t.Fatal("controls without a value must not adjust")
	}
}

func TestApplyAdjustmentRespectsSetterResult(t *testing.T) {
	states := sampleStates()
	setter := &recordingSetter{reject: true}
	if applyAdjustment(&states[0], 1, setter, setter) {
		t.Fatal("rejected update reported success")
	}
	if states[0].intValue != 250 {
		t.Fatalf("rejected update changed state to %d", states[0].intValue)
	}
	if applyAdjustment(&states[0], 1, nil, nil) {
		t.Fatal("nil setter should not adjust")
	}
}

func TestHitControl(t *testing.T) {
	states := sampleStates()
	layoutControls(states, 200, 40)
	plus := states[1].plusRect
	i, dir, ok := hitControl(states, plus.Min.X+1, plus.Min.Y+1)
	if !ok || i != 1 || dir != 1 {
		t.Fatalf("expected plus of control 1, got %d %d %v", i, dir, ok)
	}
	minus := states[0].minusRect
	i, dir, ok = hitControl(states, minus.Min.X, minus.Min.Y)
	if !ok || i != 0 || dir != -1 {
		t.Fatalf("expected minus of control 0, got %d %d %v", i, dir, ok)
	}
	missing := states[2].plusRect
	if _, _, ok := hitControl(states, missing.Min.X, missing.Min.Y); ok {
		t.Fatal("controls without a value should not be hit")
	}
	if _, _, ok := hitControl(states, 0, 0); ok {
		t.Fatal("unexpected hit outside buttons")
	}
}
