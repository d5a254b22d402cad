// Package pathfind finds shortest 4-directional paths on a core.Grid using
// breadth-first search.
//
// Neighbors are expanded in core.Dirs order (up, down, left, right), so the
// returned path is deterministic for a given grid and endpoints.
package pathfind

import "github.com/vovakirdan/pathgrid/internal/core"

// Result is the outcome of a search. A missing path is a normal outcome,
// reported with Found == false and a nil Path.
type Result struct {
	Found bool
	Path  []core.Position // Start first, End last
}

// Steps returns the number of moves along the path, or -1 when no path was found.
func (r Result) Steps() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// NotFound is the empty search result.
var NotFound = Result{}

// FindPath returns a shortest path from start to end that avoids obstacles.
// Start, End and Path cells are walkable like Free ones. Out-of-bounds
// endpoints yield NotFound.
//
// Memory: O(rows*cols) for the visited set and parent links.
func FindPath(g *core.Grid, start, end core.Position) Result {
	if !g.InBounds(start) || !g.InBounds(end) {
		return NotFound
	}

	n := g.Rows * g.Cols
	index := func(p core.Position) int { return p.Row*g.Cols + p.Col }

	visited := make([]bool, n)
	parent := make([]int, n)
	visited[index(start)] = true
	parent[index(start)] = -1

	queue := make([]core.Position, 0, n)
	queue = append(queue, start)

	for qi := 0; qi < len(queue); qi++ {
		cur := queue[qi]
		if cur == end {
			return Result{Found: true, Path: reconstruct(parent, index(cur), g.Cols)}
		}

		for _, d := range core.Dirs {
			next := cur.Step(d)
			if !g.Walkable(next) {
				continue
			}
			ni := index(next)
			if visited[ni] {
				continue
			}
			visited[ni] = true
			parent[ni] = index(cur)
			queue = append(queue, next)
		}
	}

	return NotFound
}

// reconstruct walks parent links back from the end index.
func reconstruct(parent []int, endIdx, cols int) []core.Position {
	var rev []core.Position
	for i := endIdx; i != -1; i = parent[i] {
		rev = append(rev, core.P(i/cols, i%cols))
	}
	path := make([]core.Position, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}
