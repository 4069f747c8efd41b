package render

import (
	"image/color"
	"strings"
	"testing"
	"time"

	"agent-ecosystem/internal/agent"
	"agent-ecosystem/internal/sims/ecosystem"
)

type recorder struct {
	w, h    int
	resizes int
	fills   int
	rects   []color.Color
	lines   []color.Color
	texts   []string
}

func (r *recorder) Size() (int, int) { return r.w, r.h }
func (r *recorder) Resize(w, h int) {
	r.w, r.h = w, h
	r.resizes++
}
func (r *recorder) Fill(color.Color) { r.fills++ }
func (r *recorder) FillRect(_, _, _, _ float64, c color.Color) {
	r.rects = append(r.rects, c)
}
func (r *recorder) StrokeLine(_, _, _, _, _ float64, c color.Color) {
	r.lines = append(r.lines, c)
}
func (r *recorder) DrawText(s string, _, _ int, _ color.Color) {
	r.texts = append(r.texts, s)
}

func quietWorld(records ...agent.Record) *ecosystem.World {
	cfg := ecosystem.DefaultConfig()
	cfg.Seed = 1
	cfg.Params.BackgroundDensity = 0
	w := ecosystem.New(cfg)
	w.SetAgents(records)
	return w
}

func TestCellSize(t *testing.T) {
	if got := CellSize(800, 80); got != 10 {
		t.Fatalf("CellSize(800,80) = %d, expected 10", got)
	}
	if got := CellSize(819, 80); got != 10 {
		t.Fatalf("CellSize(819,80) = %d, expected 10", got)
	}
	if got := CellSize(50, 80); got != MinCellSize {
		t.Fatalf("narrow container should clamp to %d, got %d", MinCellSize, got)
	}
	if got := CellSize(800, 0); got != MinCellSize {
		t.Fatalf("zero columns should clamp to %d, got %d", MinCellSize, got)
	}
}

func TestDrawResizesOnlyWhenDimensionsChange(t *testing.T) {
	world := quietWorld(agent.Record{Name: "A", Status: agent.StatusAlive, Balance: 5})
	r := NewRaster(0, 0)
	Draw(r, Frame{World: world, Width: 800, Hover: -1})
	Draw(r, Frame{World: world, Width: 805, Hover: -1})
	if r.Resizes() != 1 {
		t.Fatalf("expected 1 resize for unchanged cell size, got %d", r.Resizes())
	}
	if w, h := r.Size(); w != 800 || h != 360 {
		t.Fatalf("expected 800x360 surface, got %dx%d", w, h)
	}
	Draw(r, Frame{World: world, Width: 1200, Hover: -1})
	if r.Resizes() != 2 {
		t.Fatalf("expected resize after width change, got %d", r.Resizes())
	}
}

func TestDrawLoadingPlaceholder(t *testing.T) {
	rec := &recorder{}
	world := quietWorld(agent.Record{Name: "A"})
	Draw(rec, Frame{World: world, Loading: true, Width: 800, Hover: -1})
	if len(rec.rects) != 0 {
		t.Fatalf("loading frame drew %d cells", len(rec.rects))
	}
	if len(rec.texts) != 1 || !strings.Contains(rec.texts[0], "Loading") {
		t.Fatalf("expected loading text, got %v", rec.texts)
	}
}

func TestDrawEmptyPlaceholder(t *testing.T) {
	rec := &recorder{}
	Draw(rec, Frame{World: quietWorld(), Width: 800, Hover: -1})
	if len(rec.texts) != 1 || !strings.Contains(rec.texts[0], "No agents") {
		t.Fatalf("expected empty placeholder, got %v", rec.texts)
	}
	rec = &recorder{}
	Draw(rec, Frame{Width: 800, Hover: -1})
	if len(rec.texts) != 1 || !strings.Contains(rec.texts[0], "No agents") {
		t.Fatalf("expected empty placeholder for nil world, got %v", rec.texts)
	}
	if rec.w != 800 || rec.h != 360 {
		t.Fatalf("placeholder should use the default grid size, got %dx%d", rec.w, rec.h)
	}
}

func TestDrawOwnedCellUsesStatusColor(t *testing.T) {
	world := quietWorld(agent.Record{Name: "A", Status: agent.StatusDead})
	r := NewRaster(0, 0)
	Draw(r, Frame{World: world, Width: 800, Hover: -1})
	p := world.Placements()[0]
	// Tub cell (1,0) relative to the anchor.
	x := (p.Col+1)*10 + 5
	y := p.Row*10 + 5
	got := color.NRGBAModel.Convert(r.Image().At(x, y)).(color.NRGBA)
	if got != StatusColor(agent.StatusDead) {
		t.Fatalf("owned cell pixel %v, expected %v", got, StatusColor(agent.StatusDead))
	}
	// Tub center (1,1) is empty.
	empty := color.NRGBAModel.Convert(r.Image().At((p.Col+1)*10+5, (p.Row+1)*10+5)).(color.NRGBA)
	if empty != colorBackground {
		t.Fatalf("empty cell pixel %v, expected background %v", empty, colorBackground)
	}
}

func TestDrawLabelsAndHover(t *testing.T) {
	world := quietWorld(
		agent.Record{Name: "wawa", Status: agent.StatusAlive, Balance: 1300},
		agent.Record{Name: "kaka", Status: agent.StatusCritical, Balance: 3},
	)
	rec := &recorder{}
	Draw(rec, Frame{World: world, Width: 800, Hover: -1})
	joined := strings.Join(rec.texts, "|")
	for _, want := range []string{"wawa", "$1.3k", "kaka", "$3.00"} {
		if !strings.Contains(joined, want) {
			t.Fatalf("labels %q missing %q", joined, want)
		}
	}
	withoutHover := countColor(rec.lines, colorHover)
	if withoutHover != 0 {
		t.Fatalf("expected no hover outline, got %d segments", withoutHover)
	}

	rec = &recorder{}
	Draw(rec, Frame{World: world, Width: 800, Hover: 1})
	if countColor(rec.lines, colorHover) == 0 {
		t.Fatal("expected dashed hover outline")
	}
	rec = &recorder{}
	Draw(rec, Frame{World: world, Width: 800, Hover: 7})
	if countColor(rec.lines, colorHover) != 0 {
		t.Fatal("out-of-range hover must be ignored")
	}
}

func TestDrawGliderFadesWithAge(t *testing.T) {
	world := quietWorld(agent.Record{Name: "rich", Status: agent.StatusAlive, Balance: 50000})
	rec := &recorder{}
	Draw(rec, Frame{World: world, Width: 800, Hover: -1})
	young := maxAlpha(rec.rects, StatusColor(agent.StatusAlive), 0.9)

	for i := 0; i < 150; i++ {
		world.Step()
	}
	rec = &recorder{}
	Draw(rec, Frame{World: world, Width: 800, Hover: -1})
	old := maxAlpha(rec.rects, StatusColor(agent.StatusAlive), 0.9)
	if young == 0 || old >= young {
		t.Fatalf("expected glider alpha to fade, young=%d old=%d", young, old)
	}
}

func TestPulseRange(t *testing.T) {
	for ms := 0; ms < 5000; ms += 37 {
		p := pulse(time.Duration(ms) * time.Millisecond)
		if p < 0.4-1e-9 || p > 1+1e-9 {
			t.Fatalf("pulse out of range at %dms: %f", ms, p)
		}
	}
}

func TestFillMaskRGBA(t *testing.T) {
	buf := make([]byte, 8)
	fillMaskRGBA(buf, []uint8{1, 0}, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	if buf[0] != 10 || buf[1] != 20 || buf[2] != 30 || buf[3] != 255 {
		t.Fatalf("unexpected tinted pixel %v", buf[:4])
	}
	for _, b := range buf[4:] {
		if b != 0 {
			t.Fatalf("expected transparent pixel, got %v", buf[4:])
		}
	}
}

func countColor(cs []color.Color, want color.NRGBA) int {
	n := 0
	for _, c := range cs {
		if nc, ok := c.(color.NRGBA); ok && nc == want {
			n++
		}
	}
	return n
}

// maxAlpha returns the highest alpha among rects drawn in base's hue, ignoring
// opaque-ish agent cells above cutoff.
func maxAlpha(cs []color.Color, base color.NRGBA, cutoff float64) uint8 {
	var best uint8
	for _, c := range cs {
		nc, ok := c.(color.NRGBA)
		if !ok || nc.R != base.R || nc.G != base.G || nc.B != base.B {
			continue
		}
		if float64(nc.A) > cutoff*255 {
			continue
		}
		if nc.A > best && nc.A != withAlpha(base, 0.25).A {
			best = nc.A
		}
	}
	return best
}
