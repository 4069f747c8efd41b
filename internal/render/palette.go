package render

import (
	"image/color"

	"agent-ecosystem/internal/agent"
)

var (
	colorBackground  = color.NRGBA{R: 10, G: 12, B: 18, A: 255}
	colorGridLine    = color.NRGBA{R: 255, G: 255, B: 255, A: 10}
	colorNoise       = color.NRGBA{R: 90, G: 120, B: 140, A: 70}
	colorLabelDim    = color.NRGBA{R: 150, G: 155, B: 170, A: 255}
	colorPlaceholder = color.NRGBA{R: 120, G: 125, B: 140, A: 255}
	colorHover       = color.NRGBA{R: 240, G: 240, B: 250, A: 220}
)

// StatusColor returns the base color used for an agent's cells and label.
func StatusColor(s agent.Status) color.NRGBA {
	switch s {
	case agent.StatusCritical:
		return color.NRGBA{R: 255, G: 184, B: 48, A: 255}
	case agent.StatusDead:
		return color.NRGBA{R: 235, G: 72, B: 72, A: 255}
	case agent.StatusUnreachable:
		return color.NRGBA{R: 128, G: 128, B: 140, A: 255}
	default:
		return color.NRGBA{R: 52, G: 230, B: 140, A: 255}
	}
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A)*alpha + 0.5)
	return c
}
