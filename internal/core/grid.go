package core

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Alive reports whether the wrapped cell at (x, y) is non-zero.
func (g *ByteGrid) Alive(x, y int) bool {
	x, y = g.Wrap(x, y)
	return g.data[y*g.W+x] != 0
}

// Set marks the wrapped cell at (x, y) alive or dead.
func (g *ByteGrid) Set(x, y int, alive bool) {
	x, y = g.Wrap(x, y)
	if alive {
		g.data[y*g.W+x] = 1
		return
	}
	g.data[y*g.W+x] = 0
}

// Count returns the number of non-zero cells.
func (g *ByteGrid) Count() int {
	n := 0
	for _, c := range g.data {
		if c != 0 {
			n++
		}
	}
	return n
}

// SameSize reports whether other has identical dimensions.
func (g *ByteGrid) SameSize(other *ByteGrid) bool {
	return other != nil && g.W == other.W && g.H == other.H
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}
