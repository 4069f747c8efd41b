package ecosystem

import (
	"math"

	"agent-ecosystem/internal/agent"
)

// Offset is a cell position relative to a pattern anchor.
type Offset struct {
	DX, DY int
}

// Pattern identifies one of the fixed shapes used to draw agents.
type Pattern uint8

const (
	PatternBlock Pattern = iota
	PatternBeehive
	PatternLoaf
	PatternTub
	PatternBlinker
	PatternToad
)

var patternNames = [...]string{
	PatternBlock:   "block",
	PatternBeehive: "beehive",
	PatternLoaf:    "loaf",
	PatternTub:     "tub",
	PatternBlinker: "blinker",
	PatternToad:    "toad",
}

var patternCells = [...][]Offset{
	PatternBlock:   {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	PatternBeehive: {{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 2}},
	PatternLoaf:    {{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {3, 2}, {2, 3}},
	PatternTub:     {{1, 0}, {0, 1}, {2, 1}, {1, 2}},
	PatternBlinker: {{0, 0}, {1, 0}, {2, 0}},
	PatternToad:    {{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}},
}

// gliderCells is the decorative particle shape, heading down-right.
var gliderCells = []Offset{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}

// String returns the conventional pattern name.
func (p Pattern) String() string {
	if int(p) < len(patternNames) {
		return patternNames[p]
	}
	return "unknown"
}

// Offsets returns a copy of the pattern's cells.
func (p Pattern) Offsets() []Offset {
	if int(p) >= len(patternCells) {
		return nil
	}
	return append([]Offset(nil), patternCells[p]...)
}

// Width is the number of columns the pattern spans.
func (p Pattern) Width() int {
	w, _ := p.extent()
	return w
}

// Height is the number of rows the pattern spans.
func (p Pattern) Height() int {
	_, h := p.extent()
	return h
}

func (p Pattern) extent() (int, int) {
	if int(p) >= len(patternCells) {
		return 0, 0
	}
	w, h := 0, 0
	for _, o := range patternCells[p] {
		if o.DX+1 > w {
			w = o.DX + 1
		}
		if o.DY+1 > h {
			h = o.DY + 1
		}
	}
	return w, h
}

// SelectPattern picks the shape representing an agent with the given status
// and balance. Critical agents oscillate, dead and unreachable agents become a
// tub, and healthy agents grow with the order of magnitude of their balance.
func SelectPattern(status agent.Status, balance float64) Pattern {
	switch agent.ParseStatus(string(status)) {
	case agent.StatusCritical:
		if balance > 100 {
			return PatternToad
		}
		return PatternBlinker
	case agent.StatusDead, agent.StatusUnreachable:
		return PatternTub
	}
	size := sizeTier(balance)
	switch {
	case size >= 5:
		return PatternLoaf
	case size >= 3:
		return PatternBeehive
	default:
		return PatternBlock
	}
}

func sizeTier(balance float64) int {
	if math.IsNaN(balance) || balance <= 0 {
		return 1
	}
	if math.IsInf(balance, 1) {
		return 6
	}
	size := int(math.Ceil(math.Log10(balance + 1)))
	if size < 2 {
		size = 2
	}
	if size > 6 {
		size = 6
	}
	return size
}
