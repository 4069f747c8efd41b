package app

import (
	"testing"
	"time"

	"agent-ecosystem/internal/agent"
	"agent-ecosystem/internal/feed"
	"agent-ecosystem/internal/render"
	"agent-ecosystem/internal/sims/ecosystem"
)

func quietConfig() ecosystem.Config {
	cfg := ecosystem.DefaultConfig()
	cfg.Seed = 11
	cfg.Params.BackgroundDensity = 0
	return cfg
}

func pair() []agent.Record {
	return []agent.Record{
		{Name: "A", Status: agent.StatusAlive, Balance: 5},
		{Name: "B", Status: agent.StatusDead, URL: "https://example.invalid/b"},
	}
}

func TestFrameStepsOnElapsedInterval(t *testing.T) {
	c := NewController(quietConfig(), 250*time.Millisecond)
	c.SetAgents(pair())
	now := time.Unix(100, 0)
	if n := c.Frame(now); n != 0 {
		t.Fatalf("first frame stepped %d times", n)
	}
	total := 0
	for i := 0; i < 50; i++ {
		now = now.Add(20 * time.Millisecond)
		total += c.Frame(now)
	}
	if total != 4 || c.Generation() != 4 {
		t.Fatalf("expected 4 ticks in one second, got %d (generation %d)", total, c.Generation())
	}
}

func TestLoadingGateBlocksInitAndStep(t *testing.T) {
	c := NewController(quietConfig(), 250*time.Millisecond)
	c.Apply(feed.Document{Loading: true, Agents: pair()})
	if c.World().Initialized() {
		t.Fatal("world must not initialize while loading")
	}
	now := time.Unix(0, 0)
	for i := 0; i < 10; i++ {
		now = now.Add(time.Second)
		if n := c.Frame(now); n != 0 {
			t.Fatalf("world stepped %d times while loading", n)
		}
	}
	c.SetLoading(false)
	if !c.World().Initialized() || len(c.World().Placements()) != 2 {
		t.Fatal("world should initialize once loading ends")
	}
	if c.Generation() != 0 {
		t.Fatalf("expected fresh generation, got %d", c.Generation())
	}
}

func TestSetAgentsReinitializesOnlyOnChange(t *testing.T) {
	c := NewController(quietConfig(), 10*time.Millisecond)
	c.SetAgents(pair())
	now := time.Unix(0, 0)
	c.Frame(now)
	c.Frame(now.Add(25 * time.Millisecond))
	gen := c.Generation()
	if gen == 0 {
		t.Fatal("expected the world to advance")
	}
	c.SetAgents(pair())
	if c.Generation() != gen {
		t.Fatalf("identical list must not reset generation (was %d, now %d)", gen, c.Generation())
	}
	changed := pair()
	changed[0].Balance = 50
	c.SetAgents(changed)
	if c.Generation() != 0 {
		t.Fatalf("changed list must reset generation, got %d", c.Generation())
	}
}

func TestResizeKeepsSimulationState(t *testing.T) {
	c := NewController(quietConfig(), 10*time.Millisecond)
	c.SetAgents(pair())
	now := time.Unix(0, 0)
	c.Frame(now)
	c.Frame(now.Add(30 * time.Millisecond))
	gen := c.Generation()
	cells := append([]uint8(nil), c.World().Cells()...)

	c.Resize(1600)
	if c.CellSize() != 20 {
		t.Fatalf("expected cell size 20, got %d", c.CellSize())
	}
	c.Resize(10)
	if c.CellSize() != render.MinCellSize {
		t.Fatalf("expected minimum cell size, got %d", c.CellSize())
	}
	if c.Generation() != gen {
		t.Fatal("resize must not reset the generation")
	}
	for i, v := range c.World().Cells() {
		if v != cells[i] {
			t.Fatal("resize must not alter cells")
		}
	}
}

func TestHoverAndSelect(t *testing.T) {
	c := NewController(quietConfig(), time.Second)
	c.Resize(800)
	c.SetAgents(pair())

	var hovered []string
	c.OnHover = func(rec agent.Record, ok bool) {
		if ok {
			hovered = append(hovered, rec.Name)
			return
		}
		hovered = append(hovered, "")
	}
	var selected []string
	c.OnSelect = func(rec agent.Record) { selected = append(selected, rec.URL) }

	b := c.World().Placements()[1]
	c.PointerMove(b.Col*10+2, b.Row*10+2)
	c.PointerMove(b.Col*10+3, b.Row*10+3)
	if rec, ok := c.Hovered(); !ok || rec.Name != "B" {
		t.Fatalf("expected hover on B, got (%+v,%v)", rec, ok)
	}
	c.PointerMove(400, 350)
	if len(hovered) != 2 || hovered[0] != "B" || hovered[1] != "" {
		t.Fatalf("unexpected hover callbacks %v", hovered)
	}

	if _, ok := c.Click(400, 350); ok {
		t.Fatal("click on empty space must not select")
	}
	rec, ok := c.Click(b.Col*10, b.Row*10)
	if !ok || rec.Name != "B" {
		t.Fatalf("expected B selected, got (%+v,%v)", rec, ok)
	}
	if len(selected) != 1 || selected[0] != "https://example.invalid/b" {
		t.Fatalf("unexpected select callbacks %v", selected)
	}
}

func TestPauseAndStepOnce(t *testing.T) {
	c := NewController(quietConfig(), 10*time.Millisecond)
	c.SetAgents(pair())
	now := time.Unix(0, 0)
	c.Frame(now)
	c.TogglePause()
	now = now.Add(time.Second)
	if n := c.Frame(now); n != 0 {
		t.Fatalf("paused controller stepped %d times", n)
	}
	c.StepOnce()
	now = now.Add(time.Millisecond)
	if n := c.Frame(now); n != 1 {
		t.Fatalf("expected single step, got %d", n)
	}
	if n := c.Frame(now.Add(time.Millisecond)); n != 0 {
		t.Fatalf("step once must not repeat, got %d", n)
	}
}

func TestStopHaltsFrames(t *testing.T) {
	c := NewController(quietConfig(), 10*time.Millisecond)
	c.SetAgents(pair())
	c.Stop()
	now := time.Unix(0, 0)
	c.Frame(now)
	if n := c.Frame(now.Add(time.Second)); n != 0 || c.Generation() != 0 {
		t.Fatalf("stopped controller advanced: n=%d gen=%d", n, c.Generation())
	}
}

func TestRenderUsesContainerWidth(t *testing.T) {
	c := NewController(quietConfig(), time.Second)
	c.Resize(1200)
	c.SetAgents(pair())
	r := render.NewRaster(0, 0)
	c.Render(r, time.Unix(0, 0))
	if w, h := r.Size(); w != 1200 || h != 540 {
		t.Fatalf("expected 1200x540 frame, got %dx%d", w, h)
	}
}

func TestTickParameter(t *testing.T) {
	c := NewController(quietConfig(), time.Second)
	if !c.SetIntParameter("tick_ms", 100) {
		t.Fatal("tick_ms should be adjustable")
	}
	p, ok := c.Parameters().Lookup("tick_ms")
	if !ok || p.Value != "100" {
		t.Fatalf("expected tick_ms 100, got (%+v,%v)", p, ok)
	}
	if !c.SetFloatParameter("density", 0.5) {
		t.Fatal("density should pass through to the world")
	}
	if len(c.ParameterControls()) < 2 {
		t.Fatal("expected view and world controls")
	}
}
