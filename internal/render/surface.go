package render

import "image/color"

// Surface is the immediate-mode 2D target the Renderer draws into. Coordinates
// are in pixels with the origin at the top-left corner.
type Surface interface {
	Size() (int, int)
	// Resize reallocates the backing store. Callers only invoke it when the
	// dimensions actually change.
	Resize(w, h int)
	Fill(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, c color.Color)
	// DrawText draws s with its baseline starting at (x, y).
	DrawText(s string, x, y int, c color.Color)
}
