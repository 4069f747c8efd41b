package ecosystem

// NoOwner marks a cell that belongs to no agent.
const NoOwner = -1

// OwnerGrid parallels the cell grid and records, per cell, the index of the
// placement that owns it. Owned cells are pinned alive by the step rule.
type OwnerGrid struct {
	W, H int
	data []int
}

// NewOwnerGrid allocates an owner grid with every cell unowned.
func NewOwnerGrid(w, h int) *OwnerGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	g := &OwnerGrid{W: w, H: h, data: make([]int, w*h)}
	g.Clear()
	return g
}

// Owner returns the owning placement index at the wrapped coordinate, if any.
func (g *OwnerGrid) Owner(x, y int) (int, bool) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	id := g.data[y*g.W+x]
	return id, id != NoOwner
}

// Claim assigns the wrapped coordinate to owner.
func (g *OwnerGrid) Claim(x, y, owner int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	g.data[y*g.W+x] = owner
}

// Owned reports whether the cell at linear index i is claimed.
func (g *OwnerGrid) Owned(i int) bool { return g.data[i] != NoOwner }

// At returns the raw owner value at linear index i.
func (g *OwnerGrid) At(i int) int { return g.data[i] }

// Count returns the number of claimed cells.
func (g *OwnerGrid) Count() int {
	n := 0
	for _, id := range g.data {
		if id != NoOwner {
			n++
		}
	}
	return n
}

// Mask returns 1 for every claimed cell and 0 elsewhere.
func (g *OwnerGrid) Mask() []uint8 {
	out := make([]uint8, len(g.data))
	for i, id := range g.data {
		if id != NoOwner {
			out[i] = 1
		}
	}
	return out
}

// Clear releases every cell.
func (g *OwnerGrid) Clear() {
	for i := range g.data {
		g.data[i] = NoOwner
	}
}
