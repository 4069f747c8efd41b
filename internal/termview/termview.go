// Package termview prints an ecosystem world as colored terminal text.
package termview

import (
	"fmt"
	"strings"

	"agent-ecosystem/internal/agent"
	"agent-ecosystem/internal/render"
	"agent-ecosystem/internal/sims/ecosystem"

	"github.com/charmbracelet/lipgloss"
)

const (
	glyphAgent  = "█"
	glyphNoise  = "·"
	glyphGlider = "*"
	glyphEmpty  = " "
)

var (
	noiseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3E5566"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89B4FA"))
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#313244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

func statusStyle(s agent.Status) lipgloss.Style {
	c := render.StatusColor(s)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)))
}

// Render draws the world grid, one character per cell, followed by a legend.
// loading and empty worlds produce a single placeholder line.
func Render(w *ecosystem.World, loading bool) string {
	if loading {
		return dimStyle.Render("Loading ecosystem...")
	}
	if w == nil || !w.Initialized() {
		return dimStyle.Render("No agents to display")
	}

	size := w.Size()
	gliders := map[int]ecosystem.Glider{}
	for _, g := range w.Gliders() {
		for _, o := range ecosystem.GliderOffsets() {
			x := ((g.X+o.DX)%size.W + size.W) % size.W
			y := ((g.Y+o.DY)%size.H + size.H) % size.H
			gliders[y*size.W+x] = g
		}
	}

	placements := w.Placements()
	cells := w.Cells()
	owners := w.Owners()
	var grid strings.Builder
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			idx := y*size.W + x
			if owner := owners.At(idx); owner != ecosystem.NoOwner && owner < len(placements) {
				grid.WriteString(statusStyle(placements[owner].Agent.Status).Render(glyphAgent))
				continue
			}
			if g, ok := gliders[idx]; ok {
				grid.WriteString(statusStyle(g.Status).Render(glyphGlider))
				continue
			}
			if cells[idx] != 0 {
				grid.WriteString(noiseStyle.Render(glyphNoise))
				continue
			}
			grid.WriteString(glyphEmpty)
		}
		if y < size.H-1 {
			grid.WriteByte('\n')
		}
	}

	header := headerStyle.Render(fmt.Sprintf("generation %d  live %d  agents %d", w.Generation(), w.LiveCount(), len(placements)))
	return lipgloss.JoinVertical(lipgloss.Left, header, frameStyle.Render(grid.String()), Legend(placements))
}

// Legend lists every agent with its status, balance, and pattern.
func Legend(placements []ecosystem.Placement) string {
	lines := make([]string, 0, len(placements))
	for _, p := range placements {
		name := statusStyle(p.Agent.Status).Render(fmt.Sprintf("%-16s", p.Agent.Name))
		detail := dimStyle.Render(fmt.Sprintf("%-11s %9s  %-7s (%d,%d)",
			p.Agent.Status, agent.FormatBalance(p.Agent.Balance), p.Pattern, p.Col, p.Row))
		lines = append(lines, name+" "+detail)
	}
	return strings.Join(lines, "\n")
}
