package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/pathgrid/internal/core"
)

func TestNewGridAllFree(t *testing.T) {
	g := core.NewGrid(5, 7)
	if g.Rows != 5 || g.Cols != 7 {
		t.Fatalf("expected 5x7, got %dx%d", g.Rows, g.Cols)
	}
	if got := g.Count(core.Free); got != 35 {
		t.Errorf("expected 35 free cells, got %d", got)
	}
}

func TestGridSetAndAt(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.Set(core.P(2, 3), core.Obstacle)

	if g.At(core.P(2, 3)) != core.Obstacle {
		t.Error("expected obstacle at (2,3)")
	}
	if g.At(core.P(3, 2)) != core.Free {
		t.Error("expected (3,2) to stay free")
	}

	// Out-of-bounds reads as obstacle, writes are ignored
	if g.At(core.P(-1, 0)) != core.Obstacle {
		t.Error("out-of-bounds read should be obstacle")
	}
	g.Set(core.P(5, 5), core.Start)
	if g.Count(core.Start) != 0 {
		t.Error("out-of-bounds write should be ignored")
	}
}

func TestGridInBounds(t *testing.T) {
	g := core.NewGrid(5, 6)
	tests := []struct {
		p    core.Position
		want bool
	}{
		{core.P(0, 0), true},
		{core.P(4, 5), true},
		{core.P(5, 0), false},
		{core.P(0, 6), false},
		{core.P(-1, 2), false},
		{core.P(2, -1), false},
	}
	for _, tt := range tests {
		if got := g.InBounds(tt.p); got != tt.want {
			t.Errorf("InBounds(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestGridCloneIndependent(t *testing.T) {
	g := core.NewGrid(5, 5)
	c := g.Clone()
	c.Set(core.P(1, 1), core.Obstacle)

	if g.At(core.P(1, 1)) != core.Free {
		t.Error("clone mutation leaked into original")
	}
	if g.Equal(c) {
		t.Error("grids should differ after clone mutation")
	}
}

func TestGridWithPathLeavesOriginal(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.Set(core.P(0, 0), core.Start)
	g.Set(core.P(0, 3), core.End)

	path := []core.Position{core.P(0, 0), core.P(0, 1), core.P(0, 2), core.P(0, 3)}
	marked := g.WithPath(path)

	if marked.At(core.P(0, 0)) != core.Start {
		t.Error("start should be kept")
	}
	if marked.At(core.P(0, 3)) != core.End {
		t.Error("end should be kept")
	}
	if marked.Count(core.Path) != 2 {
		t.Errorf("expected 2 path cells, got %d", marked.Count(core.Path))
	}
	if g.Count(core.Path) != 0 {
		t.Error("original grid was mutated")
	}
}

func TestGridFindAndPositions(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.Set(core.P(3, 1), core.End)
	g.Set(core.P(1, 4), core.Obstacle)
	g.Set(core.P(0, 2), core.Obstacle)

	p, ok := g.Find(core.End)
	if !ok || p != core.P(3, 1) {
		t.Errorf("Find(End) = %v, %v", p, ok)
	}
	if _, ok := g.Find(core.Start); ok {
		t.Error("Find(Start) should fail on a grid with no start")
	}

	obs := g.Positions(core.Obstacle)
	if len(obs) != 2 || obs[0] != core.P(0, 2) || obs[1] != core.P(1, 4) {
		t.Errorf("unexpected obstacle positions: %v", obs)
	}
}

func TestGridRows2D(t *testing.T) {
	g := core.NewGrid(5, 6)
	g.Set(core.P(4, 5), core.End)
	rows := g.Rows2D()
	if len(rows) != 5 || len(rows[0]) != 6 {
		t.Fatalf("unexpected shape %dx%d", len(rows), len(rows[0]))
	}
	if rows[4][5] != core.End {
		t.Error("expected end at last cell")
	}
	rows[0][0] = core.Obstacle
	if g.At(core.P(0, 0)) != core.Free {
		t.Error("Rows2D should return a copy")
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		rows, cols int
		wantErr    bool
	}{
		{5, 5, false},
		{50, 50, false},
		{5, 50, false},
		{4, 10, true},
		{10, 51, true},
		{0, 0, true},
		{-3, 7, true},
	}
	for _, tt := range tests {
		err := core.ValidateDimensions(tt.rows, tt.cols)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateDimensions(%d,%d) err = %v, wantErr %v", tt.rows, tt.cols, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, core.ErrInvalidDimensions) {
			t.Errorf("expected ErrInvalidDimensions, got %v", err)
		}
	}
}
