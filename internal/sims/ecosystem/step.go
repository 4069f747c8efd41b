package ecosystem

import "agent-ecosystem/internal/core"

// StepInto writes the generation following src into dst. Owned cells are forced
// alive; every other cell follows B3/S23 over its eight toroidal neighbors. dst
// and src must be distinct grids of the same size as owners.
func StepInto(dst, src *core.ByteGrid, owners *OwnerGrid) {
	w, h := src.W, src.H
	cur := src.Cells()
	nxt := dst.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if owners != nil && owners.Owned(idx) {
				nxt[idx] = 1
				continue
			}
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += int(cur[ny*w+nx])
				}
			}
			alive := cur[idx] != 0
			nxt[idx] = 0
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				nxt[idx] = 1
			}
		}
	}
}

// Next returns a freshly allocated successor of src.
func Next(src *core.ByteGrid, owners *OwnerGrid) *core.ByteGrid {
	dst := core.NewByteGrid(src.W, src.H)
	StepInto(dst, src, owners)
	return dst
}
