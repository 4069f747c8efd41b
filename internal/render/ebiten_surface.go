//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// ImageSurface is a Surface drawing into an offscreen ebiten image.
type ImageSurface struct {
	img *ebiten.Image
}

// NewImageSurface allocates an offscreen surface.
func NewImageSurface(w, h int) *ImageSurface {
	s := &ImageSurface{}
	s.Resize(w, h)
	return s
}

// Image exposes the offscreen image for compositing onto the screen.
func (s *ImageSurface) Image() *ebiten.Image { return s.img }

// Size returns the surface dimensions.
func (s *ImageSurface) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the offscreen image.
func (s *ImageSurface) Resize(w, h int) {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	if s.img != nil {
		s.img.Dispose()
	}
	s.img = ebiten.NewImage(w, h)
}

// Fill replaces every pixel with c.
func (s *ImageSurface) Fill(c color.Color) { s.img.Fill(c) }

// FillRect draws a filled rectangle.
func (s *ImageSurface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, false)
}

// StrokeLine draws a line segment.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, false)
}

// DrawText draws s with its baseline at y.
func (s *ImageSurface) DrawText(str string, x, y int, c color.Color) {
	text.Draw(s.img, str, basicfont.Face7x13, x, y, c)
}
