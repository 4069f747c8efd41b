package ecosystem

import "strconv"

// Params holds the tunable knobs of the ecosystem view.
type Params struct {
	// BackgroundDensity is the probability that an unowned cell starts alive.
	BackgroundDensity float64
	// WealthyBalance is the balance above which a healthy agent emits a glider.
	WealthyBalance float64
	GliderLifetime int
	GliderPeriod   int
	// HitRadius is the pointer distance, in cells, that still selects an agent.
	HitRadius float64
}

// Config controls the ecosystem grid dimensions and seeding.
type Config struct {
	Cols   int
	Rows   int
	Margin int

	// Seed drives background noise. Zero selects a time-based seed.
	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Cols:   80,
		Rows:   36,
		Margin: 6,
		Params: Params{
			BackgroundDensity: 0.12,
			WealthyBalance:    1000,
			GliderLifetime:    200,
			GliderPeriod:      4,
			HitRadius:         6,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Margin = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.BackgroundDensity = clampUnit(parsed)
		}
	}
	if v, ok := cfg["wealthy_balance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.WealthyBalance = parsed
		}
	}
	if v, ok := cfg["glider_lifetime"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.GliderLifetime = parsed
		}
	}
	if v, ok := cfg["glider_period"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.GliderPeriod = parsed
		}
	}
	if v, ok := cfg["hit_radius"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.HitRadius = parsed
		}
	}
	return c
}

func clampUnit(v float64) float64 {
	if v < 0 || v != v {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
