// Package generator builds random grids with a start cell, an end cell and
// a fixed share of obstacles. All randomness comes from the caller's source.
package generator

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/pathgrid/internal/core"
)

// ErrInvalidParams is returned when generation parameters are out of range.
var ErrInvalidParams = errors.New("generator: invalid parameters")

// Params configures grid generation.
type Params struct {
	ObstacleRatio  float64 // Share of all cells turned into obstacles, in [0,1)
	MaxEndAttempts int     // Samples allowed for an end cell not touching start

	// SampleBudgetFactor bounds obstacle rejection sampling to
	// rows*cols*SampleBudgetFactor draws before shuffling the free cells.
	SampleBudgetFactor int
}

// DefaultParams returns the standard generation parameters.
func DefaultParams() Params {
	return Params{
		ObstacleRatio:      0.25,
		MaxEndAttempts:     100,
		SampleBudgetFactor: 32,
	}
}

// Validate checks the parameters.
func (p Params) Validate() error {
	if p.ObstacleRatio < 0 || p.ObstacleRatio >= 1 || math.IsNaN(p.ObstacleRatio) {
		return fmt.Errorf("%w: obstacle ratio %v not in [0,1)", ErrInvalidParams, p.ObstacleRatio)
	}
	if p.MaxEndAttempts < 1 {
		return fmt.Errorf("%w: max end attempts %d < 1", ErrInvalidParams, p.MaxEndAttempts)
	}
	if p.SampleBudgetFactor < 1 {
		return fmt.Errorf("%w: sample budget factor %d < 1", ErrInvalidParams, p.SampleBudgetFactor)
	}
	return nil
}

// Result is a freshly generated grid with its endpoints.
type Result struct {
	Grid  *core.Grid
	Start core.Position
	End   core.Position
}

// ObstacleCount returns how many obstacles a rows x cols grid receives at the given ratio.
func ObstacleCount(rows, cols int, ratio float64) int {
	return int(math.Floor(float64(rows*cols) * ratio))
}

// Generate builds a grid using DefaultParams.
func Generate(rows, cols int, rng core.RandomSource) (Result, error) {
	return GenerateWithParams(rows, cols, rng, DefaultParams())
}

// GenerateWithParams builds a rows x cols grid:
//   - start is placed uniformly at random
//   - end is resampled while it touches start (diagonals included), up to
//     p.MaxEndAttempts times; after that the last sample is kept unless it
//     equals start
//   - floor(rows*cols*p.ObstacleRatio) obstacles go on Free cells by
//     rejection sampling
func GenerateWithParams(rows, cols int, rng core.RandomSource, p Params) (Result, error) {
	if err := core.ValidateDimensions(rows, cols); err != nil {
		return Result{}, err
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	g := core.NewGrid(rows, cols)

	start := randomPosition(rows, cols, rng)
	g.Set(start, core.Start)

	end := placeEnd(rows, cols, start, rng, p.MaxEndAttempts)
	g.Set(end, core.End)

	placeObstacles(g, ObstacleCount(rows, cols, p.ObstacleRatio), rng, p.SampleBudgetFactor)

	return Result{Grid: g, Start: start, End: end}, nil
}

func randomPosition(rows, cols int, rng core.RandomSource) core.Position {
	return core.P(rng.Intn(rows), rng.Intn(cols))
}

// placeEnd samples an end position away from start.
func placeEnd(rows, cols int, start core.Position, rng core.RandomSource, maxAttempts int) core.Position {
	var end core.Position
	for attempt := 0; attempt < maxAttempts; attempt++ {
		end = randomPosition(rows, cols, rng)
		if !start.Touches(end) {
			return end
		}
	}
	// Out of attempts: accept the last sample, but never on top of start.
	for end == start {
		end = randomPosition(rows, cols, rng)
	}
	return end
}

// placeObstacles marks count Free cells as obstacles. The count is clamped
// to the number of Free cells. Rejection sampling runs until the draw budget
// is spent, then the remaining Free cells are shuffled and taken in order.
func placeObstacles(g *core.Grid, count int, rng core.RandomSource, budgetFactor int) {
	if free := g.Count(core.Free); count > free {
		count = free
	}

	placed := 0
	budget := g.Rows * g.Cols * budgetFactor
	for draws := 0; placed < count && draws < budget; draws++ {
		p := randomPosition(g.Rows, g.Cols, rng)
		if g.At(p) == core.Free {
			g.Set(p, core.Obstacle)
			placed++
		}
	}
	if placed == count {
		return
	}

	free := g.Positions(core.Free)
	for i := len(free) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		free[i], free[j] = free[j], free[i]
	}
	for _, p := range free[:count-placed] {
		g.Set(p, core.Obstacle)
	}
}
