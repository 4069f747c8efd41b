//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strings"

	"agent-ecosystem/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudTitle      = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	hudText       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hudDim        = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders the status and parameter panel to the right of the grid.
type HUD struct {
	src   Source
	width int
	panel *ebiten.Image
	title string

	controls     []controlState
	provider     core.ParameterProvider
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
}

// NewHUD constructs a HUD for src. A non-positive width disables it.
func NewHUD(src Source, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{src: src, width: width, title: buildTitle(src)}
	if provider, ok := src.(core.ParameterProvider); ok {
		h.provider = provider
	}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		h.controls = newControlStates(provider.ParameterControls())
		layoutControls(h.controls, width, controlsTop)
	}
	if setter, ok := src.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := src.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes control values and handles clicks on the +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	if h.provider != nil {
		refreshControlValues(h.controls, h.provider.Parameters())
	}
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	if i, dir, ok := hitControl(h.controls, mx-h.panelOffsetX, my); ok {
		applyAdjustment(&h.controls[i], dir, h.intSetter, h.floatSetter)
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(hudBackground)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, hudTitle)
	y += textLine + 4
	for _, line := range StatusLines(h.src) {
		text.Draw(h.panel, line, face, panelPadding, y, hudDim)
		y += textLine
	}
	y += textLine / 2
	if rec, ok := h.src.Hovered(); ok {
		for i, line := range TooltipLines(rec) {
			col := hudDim
			if i == 0 {
				col = hudText
			}
			text.Draw(h.panel, line, face, panelPadding, y, col)
			y += textLine
		}
	} else {
		text.Draw(h.panel, "hover an agent for details", face, panelPadding, y, hudDim)
	}
	h.drawControls()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(src Source) string {
	if src == nil || src.Name() == "" {
		return "Controls"
	}
	name := src.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, hudText)
		valueColor := hudText
		if !state.hasValue {
			valueColor = hudDim
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, state.minusRect.Min.X-buttonGap-valueWidth, labelY, valueColor)

		h.drawButton(state.minusRect, "-", canAdjust(state, -1, h.intSetter, h.floatSetter))
		h.drawButton(state.plusRect, "+", canAdjust(state, 1, h.intSetter, h.floatSetter))
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	vector.DrawFilledRect(h.panel, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

// Status block, a gap, and up to six tooltip lines sit above the controls.
const controlsTop = panelPadding + headerBaseline + 4 + textLine*12
