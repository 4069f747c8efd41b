// Package render draws the ecosystem world into an immediate-mode surface.
package render

import (
	"math"
	"time"

	"agent-ecosystem/internal/agent"
	"agent-ecosystem/internal/sims/ecosystem"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// MinCellSize is the smallest cell edge, in pixels, the renderer will use.
const MinCellSize = 6

const (
	trailLength = 3
	lineHeight  = 12
	dashLength  = 4.0
	pulseRate   = 4.0
)

// Frame carries everything needed to draw one image.
type Frame struct {
	// World is the simulation to draw. A nil or uninitialized world renders
	// the empty placeholder.
	World *ecosystem.World
	// Loading renders the loading placeholder regardless of World.
	Loading bool
	// Hover is the placement index under the pointer, or -1.
	Hover int
	// Width is the container width in pixels.
	Width int
	// Elapsed drives the critical-agent pulse.
	Elapsed time.Duration
}

// CellSize derives the cell edge from the container width.
func CellSize(width, cols int) int {
	if cols <= 0 {
		return MinCellSize
	}
	cs := width / cols
	if cs < MinCellSize {
		cs = MinCellSize
	}
	return cs
}

// Draw renders f into dst. It keeps no state between calls.
func Draw(dst Surface, f Frame) {
	cols, rows := ecosystem.DefaultConfig().Cols, ecosystem.DefaultConfig().Rows
	if f.World != nil {
		size := f.World.Size()
		cols, rows = size.W, size.H
	}
	cs := CellSize(f.Width, cols)
	ensureSize(dst, cols*cs, rows*cs)
	dst.Fill(colorBackground)

	switch {
	case f.Loading:
		drawPlaceholder(dst, "Loading ecosystem...")
		return
	case f.World == nil || !f.World.Initialized():
		drawPlaceholder(dst, "No agents to display")
		return
	}

	w := f.World
	drawGridLines(dst, cols, rows, cs)
	drawCells(dst, w, cs, f.Elapsed)
	drawGliders(dst, w, cs)
	drawLabels(dst, w, cs)
	if f.Hover >= 0 && f.Hover < len(w.Placements()) {
		drawHover(dst, w.Placements()[f.Hover], cs)
	}
}

func ensureSize(dst Surface, w, h int) {
	if cw, ch := dst.Size(); cw != w || ch != h {
		dst.Resize(w, h)
	}
}

func drawPlaceholder(dst Surface, msg string) {
	w, h := dst.Size()
	face := basicfont.Face7x13
	tw := font.MeasureString(face, msg).Round()
	dst.DrawText(msg, (w-tw)/2, h/2, colorPlaceholder)
}

func drawGridLines(dst Surface, cols, rows, cs int) {
	w := float64(cols * cs)
	h := float64(rows * cs)
	for x := 0; x <= cols; x++ {
		px := float64(x * cs)
		dst.StrokeLine(px, 0, px, h, 1, colorGridLine)
	}
	for y := 0; y <= rows; y++ {
		py := float64(y * cs)
		dst.StrokeLine(0, py, w, py, 1, colorGridLine)
	}
}

// pulse returns an alpha multiplier oscillating in [0.4, 1].
func pulse(elapsed time.Duration) float64 {
	return 0.7 + 0.3*math.Sin(elapsed.Seconds()*pulseRate)
}

func drawCells(dst Surface, w *ecosystem.World, cs int, elapsed time.Duration) {
	size := w.Size()
	cells := w.Cells()
	owners := w.Owners()
	placements := w.Placements()
	fcs := float64(cs)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := y*size.W + x
			px, py := float64(x*cs), float64(y*cs)
			owner := owners.At(idx)
			if owner == ecosystem.NoOwner || owner >= len(placements) {
				if cells[idx] != 0 {
					dst.FillRect(px+1, py+1, fcs-2, fcs-2, colorNoise)
				}
				continue
			}
			status := placements[owner].Agent.Status
			base := StatusColor(status)
			alpha := 1.0
			if status == agent.StatusCritical {
				alpha = pulse(elapsed)
			}
			dst.FillRect(px-1, py-1, fcs+2, fcs+2, withAlpha(base, 0.25*alpha))
			dst.FillRect(px+1, py+1, fcs-2, fcs-2, withAlpha(base, alpha))
		}
	}
}

func drawGliders(dst Surface, w *ecosystem.World, cs int) {
	size := w.Size()
	lifetime := w.Config().Params.GliderLifetime
	placements := w.Placements()
	shape := ecosystem.GliderOffsets()
	fcs := float64(cs)
	for _, g := range w.Gliders() {
		base := StatusColor(g.Status)
		if g.Owner >= 0 && g.Owner < len(placements) {
			base = StatusColor(placements[g.Owner].Agent.Status)
		}
		life := g.Remaining(lifetime)
		for k := trailLength; k >= 0; k-- {
			alpha := 0.8 * life
			if k > 0 {
				alpha *= 0.35 * (1 - float64(k)/float64(trailLength+1))
			}
			col := withAlpha(base, alpha)
			for _, o := range shape {
				cx := wrap(g.X+o.DX-k, size.W)
				cy := wrap(g.Y+o.DY-k, size.H)
				dst.FillRect(float64(cx*cs)+1, float64(cy*cs)+1, fcs-2, fcs-2, col)
			}
		}
	}
}

func drawLabels(dst Surface, w *ecosystem.World, cs int) {
	for _, p := range w.Placements() {
		x := p.Col * cs
		y := (p.Row+p.Pattern.Height())*cs + lineHeight
		dst.DrawText(p.Agent.Name, x, y, StatusColor(p.Agent.Status))
		dst.DrawText(agent.FormatBalance(p.Agent.Balance), x, y+lineHeight, colorLabelDim)
	}
}

func drawHover(dst Surface, p ecosystem.Placement, cs int) {
	x0 := float64((p.Col - 1) * cs)
	y0 := float64((p.Row - 1) * cs)
	x1 := float64((p.Col + p.Pattern.Width() + 1) * cs)
	y1 := float64((p.Row + p.Pattern.Height() + 1) * cs)
	dashedLine(dst, x0, y0, x1, y0)
	dashedLine(dst, x1, y0, x1, y1)
	dashedLine(dst, x1, y1, x0, y1)
	dashedLine(dst, x0, y1, x0, y0)
}

func dashedLine(dst Surface, x0, y0, x1, y1 float64) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	for d := 0.0; d < length; d += 2 * dashLength {
		end := math.Min(d+dashLength, length)
		dst.StrokeLine(x0+ux*d, y0+uy*d, x0+ux*end, y0+uy*end, 1, colorHover)
	}
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	return (v%n + n) % n
}
