package ui

import (
	"fmt"
	"strconv"
	"strings"

	"agent-ecosystem/internal/agent"
)

// TooltipLines formats the details shown for a hovered agent.
func TooltipLines(rec agent.Record) []string {
	lines := []string{
		rec.Name,
		"status   " + string(rec.Status),
		"balance  " + agent.FormatBalance(rec.Balance),
		"age      " + strconv.Itoa(rec.DaysAlive) + "d",
	}
	if rec.Chain != "" {
		lines = append(lines, "chain    "+rec.Chain)
	}
	if rec.KeyOrigin != "" {
		lines = append(lines, "key      "+rec.KeyOrigin)
	}
	return lines
}

// StatusLines summarizes the world for the side panel.
func StatusLines(src Source) []string {
	if src.Loading() {
		return []string{"loading..."}
	}
	w := src.World()
	if w == nil || !w.Initialized() {
		return []string{"no agents"}
	}
	counts := map[agent.Status]int{}
	for _, p := range w.Placements() {
		counts[p.Agent.Status]++
	}
	state := "running"
	if src.Paused() {
		state = "paused"
	}
	return []string{
		fmt.Sprintf("generation %d (%s)", w.Generation(), state),
		fmt.Sprintf("live cells %d", w.LiveCount()),
		fmt.Sprintf("gliders    %d", len(w.Gliders())),
		statusSummary(counts),
	}
}

func statusSummary(counts map[agent.Status]int) string {
	order := []agent.Status{agent.StatusAlive, agent.StatusCritical, agent.StatusDead, agent.StatusUnreachable}
	parts := make([]string, 0, len(order))
	for _, s := range order {
		if counts[s] > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", counts[s], s))
		}
	}
	if len(parts) == 0 {
		return "0 agents"
	}
	return strings.Join(parts, ", ")
}
