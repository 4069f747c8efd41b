package ecosystem

import (
	"strconv"

	"agent-ecosystem/internal/core"
)

// Parameters reports the current tunables.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("cols", "Columns", w.cfg.Cols),
				intParam("rows", "Rows", w.cfg.Rows),
				intParam("margin", "Margin", w.cfg.Margin),
				int64Param("seed", "Seed", w.seed),
			},
		},
		{
			Name: "Life",
			Params: []core.Parameter{
				floatParam("density", "Noise density", params.BackgroundDensity),
				floatParam("hit_radius", "Hit radius", params.HitRadius),
			},
		},
		{
			Name: "Gliders",
			Params: []core.Parameter{
				floatParam("wealthy_balance", "Wealthy balance", params.WealthyBalance),
				intParam("glider_lifetime", "Glider lifetime", params.GliderLifetime),
				intParam("glider_period", "Glider period", params.GliderPeriod),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters adjustable from the HUD.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "density", Label: "Noise density", Type: core.ParamTypeFloat, Step: 0.02, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "glider_lifetime", Label: "Glider lifetime", Type: core.ParamTypeInt, Step: 20, Min: 0, HasMin: true},
		{Key: "hit_radius", Label: "Hit radius", Type: core.ParamTypeFloat, Step: 0.5, Min: 1, Max: 20, HasMin: true, HasMax: true},
	}
}

// SetFloatParameter updates a float tunable. Density changes apply on the next
// reinitialization.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		w.cfg.Params.BackgroundDensity = clampUnit(value)
	case "hit_radius":
		if value <= 0 {
			return false
		}
		w.cfg.Params.HitRadius = value
	case "wealthy_balance":
		if value < 0 {
			value = 0
		}
		w.cfg.Params.WealthyBalance = value
	default:
		return false
	}
	return true
}

// SetIntParameter updates an integer tunable.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "glider_lifetime":
		if value < 0 {
			value = 0
		}
		w.cfg.Params.GliderLifetime = value
	case "glider_period":
		if value <= 0 {
			return false
		}
		w.cfg.Params.GliderPeriod = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
