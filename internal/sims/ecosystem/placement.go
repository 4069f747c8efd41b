package ecosystem

import (
	"math"

	"agent-ecosystem/internal/agent"
)

// Placement is the anchor assigned to one agent and the pattern drawn there.
type Placement struct {
	Agent   agent.Record
	Pattern Pattern
	Col     int
	Row     int
}

// Center returns the approximate middle of the placed pattern in cell units.
func (p Placement) Center() (float64, float64) {
	return float64(p.Col) + float64(p.Pattern.Width()-1)/2,
		float64(p.Row) + float64(p.Pattern.Height()-1)/2
}

// Place assigns anchors to an ordered agent list. Agents are packed into a
// roughly square arrangement of slots spread over the grid interior, nudged by a
// name-derived jitter of up to three cells, and clamped so patterns stay inside
// the margin. Placement depends on list order: reordering agents moves them.
func Place(records []agent.Record, cols, rows, margin int) []Placement {
	n := len(records)
	if n == 0 {
		return nil
	}
	slotCols := int(math.Ceil(math.Sqrt(float64(n))))
	slotRows := (n + slotCols - 1) / slotCols

	slotW := float64(cols-2*margin) / float64(slotCols)
	slotH := float64(rows-2*margin) / float64(slotRows)

	out := make([]Placement, n)
	for i, raw := range records {
		r := raw.Clamp()
		pattern := SelectPattern(r.Status, r.Balance)

		sc := i % slotCols
		sr := i / slotCols
		baseCol := margin + int(math.Floor(float64(sc)*slotW+slotW/2))
		baseRow := margin + int(math.Floor(float64(sr)*slotH+slotH/2))

		h := Hash(r.Name)
		jitterCol := h%7 - 3
		jitterRow := (h>>4)%7 - 3

		out[i] = Placement{
			Agent:   r,
			Pattern: pattern,
			Col:     clampInt(baseCol+jitterCol, margin, cols-margin-pattern.Width()),
			Row:     clampInt(baseRow+jitterRow, margin, rows-margin-pattern.Height()),
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
