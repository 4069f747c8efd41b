//go:build ebiten

package app

import (
	"time"

	"agent-ecosystem/internal/feed"
	"agent-ecosystem/internal/render"
	"agent-ecosystem/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Controller to the ebiten.Game interface. Update is the
// per-frame callback: it drains the feed, handles input, and advances the
// world; Draw renders it.
type Game struct {
	ctrl    *Controller
	feed    *feed.Latest
	done    <-chan struct{}
	surface *render.ImageSurface
	hud     *ui.HUD
	overlay *ui.Overlay

	hudWidth  int
	lastX     int
	lastY     int
	hadCursor bool
}

// NewGame constructs a Game. Documents published to docs are applied on the
// next frame; closing done ends the game.
func NewGame(ctrl *Controller, docs *feed.Latest, done <-chan struct{}, hudWidth int) *Game {
	if hudWidth < 0 {
		hudWidth = 0
	}
	w, h := ctrl.ViewSize()
	return &Game{
		ctrl:     ctrl,
		feed:     docs,
		done:     done,
		surface:  render.NewImageSurface(w, h),
		hud:      ui.NewHUD(ctrl, hudWidth),
		overlay:  ui.NewOverlay(ctrl),
		hudWidth: hudWidth,
	}
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	select {
	case <-g.done:
		g.ctrl.Stop()
		return ebiten.Termination
	default:
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.ctrl.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reseed(time.Now().UnixNano())
	}

	if g.feed != nil {
		if doc, ok := g.feed.Take(); ok {
			g.ctrl.Apply(doc)
		}
	}

	g.handlePointer()
	g.overlay.Update()
	viewW, _ := g.ctrl.ViewSize()
	g.hud.Update(viewW)

	g.ctrl.Frame(time.Now())
	return nil
}

func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	viewW, viewH := g.ctrl.ViewSize()
	inside := x >= 0 && y >= 0 && x < viewW && y < viewH
	if !inside {
		if g.hadCursor {
			g.ctrl.PointerLeave()
			g.hadCursor = false
		}
		return
	}
	if !g.hadCursor || x != g.lastX || y != g.lastY {
		g.ctrl.PointerMove(x, y)
		g.lastX, g.lastY = x, y
		g.hadCursor = true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.Click(x, y)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.ctrl.Render(g.surface, time.Now())
	screen.DrawImage(g.surface.Image(), nil)
	g.overlay.Draw(screen)
	viewW, viewH := g.ctrl.ViewSize()
	g.hud.Draw(screen, viewW, viewH)
}

// Layout sizes the grid to the window width left of the HUD.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctrl.Resize(outsideWidth - g.hudWidth)
	w, h := g.ctrl.ViewSize()
	return w + g.hudWidth, h
}
