package ui

import (
	"agent-ecosystem/internal/agent"
	"agent-ecosystem/internal/sims/ecosystem"
)

// Source is the view state the HUD and overlay read each frame.
type Source interface {
	Name() string
	World() *ecosystem.World
	Hovered() (agent.Record, bool)
	CellSize() int
	Paused() bool
	Loading() bool
}
