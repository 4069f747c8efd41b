package ecosystem

import "math"

// LocateCell returns the index of the placement whose pattern center is nearest
// to the cell (cx, cy), provided it lies strictly within radius cells.
func LocateCell(cx, cy int, placements []Placement, radius float64) (int, bool) {
	best := -1
	bestDist := math.Inf(1)
	for i, p := range placements {
		px, py := p.Center()
		d := math.Hypot(float64(cx)-px, float64(cy)-py)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best < 0 || bestDist >= radius {
		return -1, false
	}
	return best, true
}

// Locate maps a pointer position in pixels to the nearest placement. Pixels are
// converted to cells by integer division by cellSize.
func Locate(px, py, cellSize int, placements []Placement, radius float64) (int, bool) {
	if cellSize <= 0 {
		return -1, false
	}
	return LocateCell(floorDiv(px, cellSize), floorDiv(py, cellSize), placements, radius)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
