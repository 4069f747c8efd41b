package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster is a software Surface backed by an *image.RGBA. It serves headless
// snapshots and tests.
type Raster struct {
	img     *image.RGBA
	resizes int
}

// NewRaster allocates a raster of the given size.
func NewRaster(w, h int) *Raster {
	r := &Raster{}
	r.alloc(w, h)
	return r
}

func (r *Raster) alloc(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	r.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Resizes reports how many times the backing image was reallocated.
func (r *Raster) Resizes() int { return r.resizes }

// Size returns the raster dimensions.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the backing image.
func (r *Raster) Resize(w, h int) {
	r.alloc(w, h)
	r.resizes++
}

// Fill replaces every pixel with c.
func (r *Raster) Fill(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect composites c over the rectangle, snapped to whole pixels.
func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	rect := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(r.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(r.img, rect, image.NewUniform(c), image.Point{}, draw.Over)
}

// StrokeLine draws a line by stamping width-sized squares along it.
func (r *Raster) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	if width <= 0 {
		return
	}
	if x0 == x1 || y0 == y1 {
		minX, maxX := math.Min(x0, x1), math.Max(x0, x1)
		minY, maxY := math.Min(y0, y1), math.Max(y0, y1)
		if x0 == x1 {
			r.FillRect(minX-width/2, minY, width, math.Max(maxY-minY, 1), c)
		} else {
			r.FillRect(minX, minY-width/2, math.Max(maxX-minX, 1), width, c)
		}
		return
	}
	steps := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		px := x0 + (x1-x0)*t
		py := y0 + (y1-y0)*t
		r.FillRect(px-width/2, py-width/2, width, width, c)
	}
}

// DrawText renders s in the 7x13 bitmap face with its baseline at y.
func (r *Raster) DrawText(s string, x, y int, c color.Color) {
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
