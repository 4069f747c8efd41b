//go:build ebiten

package ui

import (
	"image/color"

	"agent-ecosystem/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional debugging visuals on top of the grid. Key 1 toggles
// the ownership mask, key 2 toggles pattern anchors and hit radii.
type Overlay struct {
	src         Source
	showOwners  bool
	showAnchors bool
	painter     *render.MaskPainter
	painterW    int
	painterH    int
}

// NewOverlay constructs an overlay reading from src.
func NewOverlay(src Source) *Overlay {
	return &Overlay{src: src}
}

// Update toggles layers on key presses.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showOwners = !o.showOwners
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showAnchors = !o.showAnchors
	}
}

// Draw renders the enabled layers onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	w := o.src.World()
	if w == nil || !w.Initialized() || o.src.Loading() {
		return
	}
	cs := o.src.CellSize()
	if cs <= 0 {
		return
	}
	size := w.Size()
	if o.showOwners {
		if o.painter == nil || o.painterW != size.W || o.painterH != size.H {
			o.painter = render.NewMaskPainter(size.W, size.H)
			o.painterW, o.painterH = size.W, size.H
		}
		o.painter.Blit(screen, w.Owners().Mask(), color.RGBA{R: 255, G: 0, B: 200, A: 90}, cs)
	}
	if o.showAnchors {
		radius := float32(w.Config().Params.HitRadius * float64(cs))
		for _, p := range w.Placements() {
			ax := float32(p.Col*cs + cs/2)
			ay := float32(p.Row*cs + cs/2)
			vector.DrawFilledRect(screen, ax-2, ay-2, 4, 4, color.RGBA{R: 255, G: 255, B: 0, A: 220}, false)
			cx, cy := p.Center()
			half := float64(cs) / 2
			vector.StrokeCircle(screen, float32(cx*float64(cs)+half), float32(cy*float64(cs)+half), radius, 1, color.RGBA{R: 0, G: 200, B: 255, A: 160}, true)
		}
	}
}
