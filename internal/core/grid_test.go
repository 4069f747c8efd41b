package core

import "testing"

func TestWrapToroidal(t *testing.T) {
	g := NewByteGrid(5, 4)
	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{-1, 0, 4, 0},
		{5, 0, 0, 0},
		{0, -1, 0, 3},
		{0, 4, 0, 0},
		{-6, -9, 4, 3},
		{2, 2, 2, 2},
	}
	for _, tc := range cases {
		x, y := g.Wrap(tc.x, tc.y)
		if x != tc.wx || y != tc.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", tc.x, tc.y, x, y, tc.wx, tc.wy)
		}
	}
}

func TestSetAliveCount(t *testing.T) {
	g := NewByteGrid(3, 3)
	g.Set(-1, -1, true)
	if !g.Alive(2, 2) {
		t.Fatal("expected wrapped set to mark (2,2) alive")
	}
	g.Set(0, 0, true)
	if got := g.Count(); got != 2 {
		t.Fatalf("expected 2 live cells, got %d", got)
	}
	g.Set(3, 3, false)
	if g.Alive(0, 0) {
		t.Fatal("expected wrapped clear to kill (0,0)")
	}
	g.Clear()
	if got := g.Count(); got != 0 {
		t.Fatalf("expected cleared grid, got %d live cells", got)
	}
}

func TestNewByteGridClampsDimensions(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d (%d cells)", g.W, g.H, len(g.Cells()))
	}
}
