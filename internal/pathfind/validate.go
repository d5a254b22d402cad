package pathfind

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/pathgrid/internal/core"
)

// ErrInvalidPath is wrapped by every ValidatePath failure.
var ErrInvalidPath = errors.New("pathfind: invalid path")

// ValidatePath checks that path runs from start to end over in-bounds,
// non-obstacle cells, moving one orthogonal step at a time and never
// revisiting a cell.
func ValidatePath(g *core.Grid, start, end core.Position, path []core.Position) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if path[0] != start {
		return fmt.Errorf("%w: begins at %v, want %v", ErrInvalidPath, path[0], start)
	}
	if last := path[len(path)-1]; last != end {
		return fmt.Errorf("%w: ends at %v, want %v", ErrInvalidPath, last, end)
	}

	seen := make(map[core.Position]bool, len(path))
	for i, p := range path {
		if !g.InBounds(p) {
			return fmt.Errorf("%w: step %d at %v is out of bounds", ErrInvalidPath, i, p)
		}
		if g.At(p) == core.Obstacle {
			return fmt.Errorf("%w: step %d at %v is an obstacle", ErrInvalidPath, i, p)
		}
		if seen[p] {
			return fmt.Errorf("%w: step %d revisits %v", ErrInvalidPath, i, p)
		}
		seen[p] = true
		if i > 0 && !path[i-1].Adjacent4(p) {
			return fmt.Errorf("%w: step %d jumps from %v to %v", ErrInvalidPath, i, path[i-1], p)
		}
	}
	return nil
}
