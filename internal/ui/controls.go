package ui

import (
	"image"
	"math"
	"strconv"

	"agent-ecosystem/internal/core"
)

type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func newControlStates(controls []core.ParameterControl) []controlState {
	states := make([]controlState, len(controls))
	for i, ctrl := range controls {
		states[i] = controlState{control: ctrl, value: "--"}
	}
	return states
}

// layoutControls stacks the rows from top and right-aligns the buttons in a
// panel of the given width.
func layoutControls(states []controlState, width, top int) {
	if width <= 0 {
		return
	}
	for i := range states {
		rowTop := top + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		plus := image.Rect(width-panelPadding-buttonSize, buttonY, width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		states[i].top = rowTop
		states[i].minusRect = minus
		states[i].plusRect = plus
	}
}

func refreshControlValues(states []controlState, snap core.ParameterSnapshot) {
	for i := range states {
		state := &states[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

func intStep(ctrl core.ParameterControl) int {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	return step
}

func floatStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

// intTarget returns the clamped value one step away and whether it differs
// from the current value.
func intTarget(state *controlState, direction int) (int, bool) {
	ctrl := state.control
	target := state.intValue + direction*intStep(ctrl)
	if ctrl.HasMin {
		if min := int(math.Round(ctrl.Min)); target < min {
			target = min
		}
	}
	if ctrl.HasMax {
		if max := int(math.Round(ctrl.Max)); target > max {
			target = max
		}
	}
	return target, target != state.intValue
}

func floatTarget(state *controlState, direction int) (float64, bool) {
	ctrl := state.control
	target := state.floatValue + float64(direction)*floatStep(ctrl)
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	return target, math.Abs(target-state.floatValue) >= 1e-9
}

// applyAdjustment moves a control one step in direction through the setters.
// Missing setters leave the control untouched.
func applyAdjustment(state *controlState, direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	if state == nil || direction == 0 || !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		target, changed := intTarget(state, direction)
		if ints == nil || !changed {
			return false
		}
		if !ints.SetIntParameter(state.control.Key, target) {
			return false
		}
		state.intValue = target
		state.floatValue = float64(target)
		state.value = strconv.Itoa(target)
		return true
	case core.ParamTypeFloat:
		target, changed := floatTarget(state, direction)
		if floats == nil || !changed {
			return false
		}
		if !floats.SetFloatParameter(state.control.Key, target) {
			return false
		}
		state.floatValue = target
		state.value = formatFloat(state.control, target)
		return true
	}
	return false
}

func canAdjust(state *controlState, direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	if state == nil || direction == 0 || !state.hasValue {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		_, changed := intTarget(state, direction)
		return ints != nil && changed
	case core.ParamTypeFloat:
		_, changed := floatTarget(state, direction)
		return floats != nil && changed
	}
	return false
}

// hitControl reports which button, if any, contains the panel-local point.
func hitControl(states []controlState, x, y int) (int, int, bool) {
	for i := range states {
		if !states[i].hasValue {
			continue
		}
		if pointInRect(x, y, states[i].minusRect) {
			return i, -1, true
		}
		if pointInRect(x, y, states[i].plusRect) {
			return i, 1, true
		}
	}
	return 0, 0, false
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := floatStep(ctrl)
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	textLine       = 15
)
