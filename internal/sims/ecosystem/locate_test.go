package ecosystem

import (
	"testing"

	"agent-ecosystem/internal/agent"
)

func TestLocateAtAnchorAndBeyondRadius(t *testing.T) {
	placements := Place([]agent.Record{
		{Name: "A", Status: agent.StatusAlive, Balance: 5},
		{Name: "B", Status: agent.StatusDead},
	}, 80, 36, 6)
	const cellSize = 10

	for i, p := range placements {
		got, ok := Locate(p.Col*cellSize, p.Row*cellSize, cellSize, placements, 6)
		if !ok || got != i {
			t.Fatalf("pointer on anchor of %s resolved to (%d,%v)", p.Agent.Name, got, ok)
		}
		got, ok = Locate(p.Col*cellSize+cellSize-1, p.Row*cellSize+cellSize-1, cellSize, placements, 6)
		if !ok || got != i {
			t.Fatalf("pointer inside anchor cell of %s resolved to (%d,%v)", p.Agent.Name, got, ok)
		}
	}

	if got, ok := Locate(40*cellSize, 32*cellSize, cellSize, placements, 6); ok {
		t.Fatalf("pointer far from every agent resolved to %d", got)
	}
}

func TestLocateRadiusIsStrict(t *testing.T) {
	placements := []Placement{{Pattern: PatternBlinker, Col: 10, Row: 10}}
	// Blinker center is (11, 10).
	if _, ok := LocateCell(16, 10, placements, 6); !ok {
		t.Fatal("distance 5 should hit")
	}
	if _, ok := LocateCell(17, 10, placements, 6); ok {
		t.Fatal("distance equal to the radius should miss")
	}
}

func TestLocatePicksNearest(t *testing.T) {
	placements := []Placement{
		{Pattern: PatternBlinker, Col: 10, Row: 10},
		{Pattern: PatternBlinker, Col: 16, Row: 10},
	}
	if got, ok := LocateCell(15, 10, placements, 6); !ok || got != 1 {
		t.Fatalf("expected nearest placement 1, got (%d,%v)", got, ok)
	}
}

func TestLocateDegenerateInputs(t *testing.T) {
	if _, ok := Locate(10, 10, 0, []Placement{{}}, 6); ok {
		t.Fatal("zero cell size must not resolve")
	}
	if _, ok := Locate(10, 10, 8, nil, 6); ok {
		t.Fatal("no placements must not resolve")
	}
	if got := floorDiv(-1, 8); got != -1 {
		t.Fatalf("floorDiv(-1, 8) = %d, expected -1", got)
	}
}
