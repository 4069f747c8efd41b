package ecosystem

import "agent-ecosystem/internal/agent"

// Glider is a decorative particle drifting diagonally across the view. Gliders
// never touch the cell or owner grids.
type Glider struct {
	X, Y   int
	Age    int
	Status agent.Status
	// Owner is the index of the placement that emitted the glider.
	Owner int
}

// Remaining returns the fraction of lifetime left, in [0, 1].
func (g Glider) Remaining(lifetime int) float64 {
	if lifetime <= 0 {
		return 0
	}
	r := 1 - float64(g.Age)/float64(lifetime)
	if r < 0 {
		return 0
	}
	return r
}

// GliderOffsets returns a copy of the glider shape.
func GliderOffsets() []Offset {
	return append([]Offset(nil), gliderCells...)
}

// SpawnGliders emits one glider beside every healthy agent whose balance is
// above threshold.
func SpawnGliders(placements []Placement, threshold float64, cols, rows int) []Glider {
	var out []Glider
	for i, p := range placements {
		if p.Agent.Status != agent.StatusAlive || p.Agent.Balance <= threshold {
			continue
		}
		out = append(out, Glider{
			X:      wrap(p.Col+p.Pattern.Width()+1, cols),
			Y:      wrap(p.Row+p.Pattern.Height()+1, rows),
			Status: p.Agent.Status,
			Owner:  i,
		})
	}
	return out
}

// AdvanceGliders ages every glider by one tick, moves it one cell diagonally
// every period ticks, and drops gliders older than lifetime. The slice is
// filtered in place.
func AdvanceGliders(gliders []Glider, cols, rows, period, lifetime int) []Glider {
	if period <= 0 {
		period = 1
	}
	kept := gliders[:0]
	for _, g := range gliders {
		g.Age++
		if g.Age%period == 0 {
			g.X = wrap(g.X+1, cols)
			g.Y = wrap(g.Y+1, rows)
		}
		if g.Age > lifetime {
			continue
		}
		kept = append(kept, g)
	}
	return kept
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	return (v%n + n) % n
}
