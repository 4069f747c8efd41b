package app

import (
	"strconv"
	"time"

	"agent-ecosystem/internal/agent"
	"agent-ecosystem/internal/core"
	"agent-ecosystem/internal/feed"
	"agent-ecosystem/internal/render"
	"agent-ecosystem/internal/sims/ecosystem"
)

// Controller owns the ecosystem world and drives it from a per-frame callback.
// It is not safe for concurrent use: frames, pointer events, and agent updates
// must all arrive on the same goroutine.
type Controller struct {
	world  *ecosystem.World
	ticker *core.FixedStep

	loading bool
	pending []agent.Record
	applied []agent.Record

	width    int
	cellSize int
	hover    int

	paused   bool
	stepOnce bool
	stopped  bool
	start    time.Time

	// OnHover is called when the agent under the pointer changes.
	OnHover func(rec agent.Record, ok bool)
	// OnSelect is called when an agent is clicked.
	OnSelect func(rec agent.Record)
}

// NewController builds a controller for a world configured by cfg, ticking
// every interval.
func NewController(cfg ecosystem.Config, interval time.Duration) *Controller {
	c := &Controller{
		world:  ecosystem.New(cfg),
		ticker: core.NewFixedStep(interval),
		hover:  -1,
	}
	c.Resize(0)
	return c
}

// World exposes the simulation for rendering and inspection.
func (c *Controller) World() *ecosystem.World { return c.world }

// Name identifies the view in window titles and the HUD.
func (c *Controller) Name() string { return c.world.Name() }

// Loading reports whether the loading gate is closed.
func (c *Controller) Loading() bool { return c.loading }

// CellSize returns the current cell edge in pixels.
func (c *Controller) CellSize() int { return c.cellSize }

// Generation returns the world's generation counter.
func (c *Controller) Generation() int { return c.world.Generation() }

// Paused reports whether automatic stepping is suspended.
func (c *Controller) Paused() bool { return c.paused }

// Apply consumes a feed document.
func (c *Controller) Apply(doc feed.Document) {
	c.pending = doc.Agents
	c.SetLoading(doc.Loading)
}

// SetLoading opens or closes the loading gate. While loading the world is
// neither reinitialized nor stepped.
func (c *Controller) SetLoading(loading bool) {
	c.loading = loading
	c.sync()
}

// SetAgents supplies a new ordered agent list. The world is rebuilt only when
// the list differs from the one it was built from.
func (c *Controller) SetAgents(records []agent.Record) {
	c.pending = records
	c.sync()
}

func (c *Controller) sync() {
	if c.loading || c.stopped {
		return
	}
	if agent.Equal(c.pending, c.applied) {
		return
	}
	c.applied = append([]agent.Record(nil), c.pending...)
	c.world.SetAgents(c.applied)
	c.ticker.Reset()
	c.setHover(-1)
}

// Resize adapts the cell size to a new container width. Simulation state is
// kept.
func (c *Controller) Resize(width int) {
	c.width = width
	c.cellSize = render.CellSize(width, c.world.Size().W)
}

// ViewSize returns the pixel dimensions of the rendered grid.
func (c *Controller) ViewSize() (int, int) {
	size := c.world.Size()
	return size.W * c.cellSize, size.H * c.cellSize
}

// Frame is the per-refresh callback. It advances the world by however many
// ticks are due at now and returns that count.
func (c *Controller) Frame(now time.Time) int {
	if c.stopped {
		return 0
	}
	if c.start.IsZero() {
		c.start = now
	}
	if c.loading || !c.world.Initialized() {
		c.ticker.Reset()
		return 0
	}
	due := c.ticker.Due(now)
	if c.paused {
		due = 0
		if c.stepOnce {
			due = 1
		}
	}
	c.stepOnce = false
	for i := 0; i < due; i++ {
		c.world.Step()
	}
	return due
}

// Render draws the current state into dst.
func (c *Controller) Render(dst render.Surface, now time.Time) {
	var elapsed time.Duration
	if !c.start.IsZero() {
		elapsed = now.Sub(c.start)
	}
	render.Draw(dst, render.Frame{
		World:   c.world,
		Loading: c.loading,
		Hover:   c.hover,
		Width:   c.width,
		Elapsed: elapsed,
	})
}

// PointerMove updates the hover target for a pointer at pixel (x, y).
func (c *Controller) PointerMove(x, y int) {
	if c.loading {
		c.setHover(-1)
		return
	}
	i, ok := ecosystem.Locate(x, y, c.cellSize, c.world.Placements(), c.world.Config().Params.HitRadius)
	if !ok {
		i = -1
	}
	c.setHover(i)
}

// PointerLeave clears the hover target.
func (c *Controller) PointerLeave() { c.setHover(-1) }

// Click selects the agent under pixel (x, y), if any.
func (c *Controller) Click(x, y int) (agent.Record, bool) {
	if c.loading {
		return agent.Record{}, false
	}
	rec, ok := c.world.Locate(x, y, c.cellSize)
	if ok && c.OnSelect != nil {
		c.OnSelect(rec)
	}
	return rec, ok
}

// Hovered returns the agent under the pointer.
func (c *Controller) Hovered() (agent.Record, bool) {
	placements := c.world.Placements()
	if c.hover < 0 || c.hover >= len(placements) {
		return agent.Record{}, false
	}
	return placements[c.hover].Agent, true
}

func (c *Controller) setHover(i int) {
	if i == c.hover {
		return
	}
	c.hover = i
	if c.OnHover != nil {
		c.OnHover(c.Hovered())
	}
}

// TogglePause suspends or resumes automatic stepping.
func (c *Controller) TogglePause() { c.paused = !c.paused }

// StepOnce advances exactly one tick on the next frame while paused.
func (c *Controller) StepOnce() { c.stepOnce = true }

// Reseed rebuilds the current agents over new background noise.
func (c *Controller) Reseed(seed int64) {
	if c.loading || c.stopped {
		return
	}
	c.world.Reset(seed)
	c.ticker.Reset()
}

// Stop tears the controller down. Later frames do nothing.
func (c *Controller) Stop() { c.stopped = true }

// Stopped reports whether Stop was called.
func (c *Controller) Stopped() bool { return c.stopped }

// Parameters merges the world tunables with the view settings.
func (c *Controller) Parameters() core.ParameterSnapshot {
	snap := c.world.Parameters()
	snap.Groups = append([]core.ParameterGroup{{
		Name: "View",
		Params: []core.Parameter{
			{Key: "tick_ms", Label: "Tick (ms)", Type: core.ParamTypeInt, Value: strconv.FormatInt(c.ticker.Interval().Milliseconds(), 10)},
			{Key: "cell_size", Label: "Cell size", Type: core.ParamTypeInt, Value: strconv.Itoa(c.cellSize)},
		},
	}}, snap.Groups...)
	return snap
}

// ParameterControls lists the HUD-adjustable parameters.
func (c *Controller) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: "tick_ms", Label: "Tick (ms)", Type: core.ParamTypeInt, Step: 50, Min: 50, Max: 2000, HasMin: true, HasMax: true},
	}
	return append(controls, c.world.ParameterControls()...)
}

// SetIntParameter updates an integer parameter.
func (c *Controller) SetIntParameter(key string, value int) bool {
	if key == "tick_ms" {
		if value <= 0 {
			return false
		}
		c.ticker.SetInterval(time.Duration(value) * time.Millisecond)
		return true
	}
	return c.world.SetIntParameter(key, value)
}

// SetFloatParameter updates a floating point parameter.
func (c *Controller) SetFloatParameter(key string, value float64) bool {
	return c.world.SetFloatParameter(key, value)
}
