package core

// Grid is a rectangular board of cell states.
// Cells are stored in row-major order: index = row*Cols + col.
type Grid struct {
	Rows  int
	Cols  int
	Cells []CellState
}

// NewGrid creates a grid with every cell Free.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]CellState, rows*cols),
	}
}

// index converts a position to a flat array index.
func (g *Grid) index(p Position) int {
	return p.Row*g.Cols + p.Col
}

// InBounds returns true if the position is within the grid boundaries.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// At returns the state of the cell at p.
// Out-of-bounds positions read as Obstacle so callers never walk off the board.
func (g *Grid) At(p Position) CellState {
	if !g.InBounds(p) {
		return Obstacle
	}
	return g.Cells[g.index(p)]
}

// Set changes the state of the cell at p. Out-of-bounds writes are ignored.
func (g *Grid) Set(p Position, s CellState) {
	if g.InBounds(p) {
		g.Cells[g.index(p)] = s
	}
}

// Walkable reports whether p is in bounds and not an obstacle.
func (g *Grid) Walkable(p Position) bool {
	return g.InBounds(p) && g.At(p).Walkable()
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		Rows:  g.Rows,
		Cols:  g.Cols,
		Cells: cells,
	}
}

// Count returns the number of cells in state s.
func (g *Grid) Count(s CellState) int {
	count := 0
	for _, cell := range g.Cells {
		if cell == s {
			count++
		}
	}
	return count
}

// Find returns the first position in row-major order holding state s.
func (g *Grid) Find(s CellState) (Position, bool) {
	for i, cell := range g.Cells {
		if cell == s {
			return P(i/g.Cols, i%g.Cols), true
		}
	}
	return Position{}, false
}

// Positions returns every position holding state s, ordered by row then column.
func (g *Grid) Positions(s CellState) []Position {
	out := make([]Position, 0)
	for i, cell := range g.Cells {
		if cell == s {
			out = append(out, P(i/g.Cols, i%g.Cols))
		}
	}
	return out
}

// Rows2D returns the grid as a slice of rows.
func (g *Grid) Rows2D() [][]CellState {
	out := make([][]CellState, g.Rows)
	for r := 0; r < g.Rows; r++ {
		row := make([]CellState, g.Cols)
		copy(row, g.Cells[r*g.Cols:(r+1)*g.Cols])
		out[r] = row
	}
	return out
}

// WithPath returns a copy of the grid with the path's Free cells marked Path.
// Start, End and any other non-Free cells keep their state. The receiver is
// not modified.
func (g *Grid) WithPath(path []Position) *Grid {
	out := g.Clone()
	for _, p := range path {
		if out.At(p) == Free {
			out.Set(p, Path)
		}
	}
	return out
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}
