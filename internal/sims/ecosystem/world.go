// Package ecosystem renders a population of monitored agents as a living
// Game-of-Life grid: each agent is a pinned still-life or oscillator embedded
// in freely evolving background noise.
package ecosystem

import (
	"time"

	"agent-ecosystem/internal/agent"
	"agent-ecosystem/internal/core"
)

// World owns the complete simulation state: the cell grid, the owner grid, the
// agent placements, the decorative gliders and the generation counter. All of
// it is rebuilt whenever the agent list changes.
type World struct {
	cfg Config

	cur    *core.ByteGrid
	nxt    *core.ByteGrid
	owners *OwnerGrid

	agents     []agent.Record
	placements []Placement
	gliders    []Glider
	generation int

	seed int64
}

var _ core.Sim = (*World)(nil)

// New returns an empty World. It stays uninitialized until SetAgents receives
// a non-empty list.
func New(cfg Config) *World {
	if cfg.Cols <= 0 {
		cfg.Cols = DefaultConfig().Cols
	}
	if cfg.Rows <= 0 {
		cfg.Rows = DefaultConfig().Rows
	}
	if cfg.Margin < 0 {
		cfg.Margin = 0
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &World{
		cfg:    cfg,
		cur:    core.NewByteGrid(cfg.Cols, cfg.Rows),
		nxt:    core.NewByteGrid(cfg.Cols, cfg.Rows),
		owners: NewOwnerGrid(cfg.Cols, cfg.Rows),
		seed:   seed,
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "ecosystem" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Cols, H: w.cfg.Rows} }

// Cells exposes the current generation as 0/1 values.
func (w *World) Cells() []uint8 { return w.cur.Cells() }

// Grid exposes the current generation.
func (w *World) Grid() *core.ByteGrid { return w.cur }

// Owners exposes the owner grid.
func (w *World) Owners() *OwnerGrid { return w.owners }

// Agents returns the agent list the world was built from.
func (w *World) Agents() []agent.Record { return w.agents }

// Placements returns the anchor of every agent, in input order.
func (w *World) Placements() []Placement { return w.placements }

// Gliders returns the live decorative particles.
func (w *World) Gliders() []Glider { return w.gliders }

// Generation returns the number of steps since the last reinitialization.
func (w *World) Generation() int { return w.generation }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// Initialized reports whether the world holds at least one agent.
func (w *World) Initialized() bool { return len(w.agents) > 0 }

// SetAgents discards all state and rebuilds the world for records. An empty
// list leaves the world uninitialized.
func (w *World) SetAgents(records []agent.Record) {
	w.agents = agent.ClampAll(records)
	w.rebuild()
}

// Reset rebuilds the current agent list over fresh background noise.
func (w *World) Reset(seed int64) {
	if seed != 0 {
		w.seed = seed
	}
	w.rebuild()
}

func (w *World) rebuild() {
	w.cur.Clear()
	w.nxt.Clear()
	w.owners.Clear()
	w.placements = nil
	w.gliders = nil
	w.generation = 0
	if len(w.agents) == 0 {
		w.agents = nil
		return
	}

	core.NewRNG(w.seed).FillNoise(w.cur.Cells(), w.cfg.Params.BackgroundDensity)

	w.placements = Place(w.agents, w.cfg.Cols, w.cfg.Rows, w.cfg.Margin)
	for i, p := range w.placements {
		for _, o := range p.Pattern.Offsets() {
			w.cur.Set(p.Col+o.DX, p.Row+o.DY, true)
			w.owners.Claim(p.Col+o.DX, p.Row+o.DY, i)
		}
	}
	w.gliders = SpawnGliders(w.placements, w.cfg.Params.WealthyBalance, w.cfg.Cols, w.cfg.Rows)
}

// Step advances the automaton and the gliders by one tick. It does nothing
// while the world is uninitialized.
func (w *World) Step() {
	if !w.Initialized() {
		return
	}
	StepInto(w.nxt, w.cur, w.owners)
	w.cur, w.nxt = w.nxt, w.cur
	w.gliders = AdvanceGliders(w.gliders, w.cfg.Cols, w.cfg.Rows, w.cfg.Params.GliderPeriod, w.cfg.Params.GliderLifetime)
	w.generation++
}

// Locate resolves a pointer position in pixels to the nearest agent.
func (w *World) Locate(px, py, cellSize int) (agent.Record, bool) {
	i, ok := Locate(px, py, cellSize, w.placements, w.cfg.Params.HitRadius)
	if !ok {
		return agent.Record{}, false
	}
	return w.placements[i].Agent, true
}

// LiveCount returns the number of live cells.
func (w *World) LiveCount() int { return w.cur.Count() }

// OwnedCount returns the number of agent-owned cells.
func (w *World) OwnedCount() int { return w.owners.Count() }
