//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// MaskPainter uploads a binary cell mask into a grid-sized image and draws it
// scaled up to the cell size.
type MaskPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewMaskPainter allocates a painter for a grid of size w*h.
func NewMaskPainter(w, h int) *MaskPainter {
	mp := &MaskPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	mp.img = ebiten.NewImage(w, h)
	return mp
}

// Blit tints every non-zero mask cell and draws the result onto dst.
func (mp *MaskPainter) Blit(dst *ebiten.Image, mask []uint8, tint color.Color, scale int) {
	if len(mask) != mp.w*mp.h {
		return
	}
	fillMaskRGBA(mp.buf, mask, tint)
	mp.img.WritePixels(mp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(mp.img, op)
}
