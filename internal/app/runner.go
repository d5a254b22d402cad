// Package app ties grid generation, pathfinding and run history together.
// It is the single entry point used by the CLI and the SSH server.
package app

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pathgrid/internal/core"
	"github.com/vovakirdan/pathgrid/internal/generator"
	"github.com/vovakirdan/pathgrid/internal/levels"
	"github.com/vovakirdan/pathgrid/internal/pathfind"
	"github.com/vovakirdan/pathgrid/internal/storage"
)

// RunStore records finished runs. *storage.Store implements it.
type RunStore interface {
	SaveRun(r storage.Run) (string, error)
}

// Outcome is the result of one generate-and-search or level run.
type Outcome struct {
	ID     string // Empty when the run was not stored
	Source string
	Seed   uint64
	Grid   *core.Grid
	Start  core.Position
	End    core.Position
	Result pathfind.Result
}

// Marked returns the grid with the found path annotated, or a plain copy
// when no path exists.
func (o Outcome) Marked() *core.Grid {
	return o.Grid.WithPath(o.Result.Path)
}

// Runner executes runs and records them.
type Runner struct {
	params generator.Params
	store  RunStore
	logger *log.Logger
}

// NewRunner creates a runner. store may be nil to skip persistence.
func NewRunner(params generator.Params, store RunStore, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{params: params, store: store, logger: logger}
}

// Random generates a rows x cols grid from seed and searches it.
func (r *Runner) Random(source string, rows, cols int, seed uint64) (Outcome, error) {
	gen, err := generator.GenerateWithParams(rows, cols, core.NewRNG(seed), r.params)
	if err != nil {
		r.logger.Warn("generation rejected", "rows", rows, "cols", cols, "error", err)
		return Outcome{}, err
	}
	r.logger.Debug("grid generated",
		"rows", rows,
		"cols", cols,
		"seed", seed,
		"start", gen.Start,
		"end", gen.End,
		"obstacles", gen.Grid.Count(core.Obstacle),
	)

	out := Outcome{
		Source: source,
		Seed:   seed,
		Grid:   gen.Grid,
		Start:  gen.Start,
		End:    gen.End,
	}
	return r.solve(out), nil
}

// Level searches a hand-built level.
func (r *Runner) Level(lvl levels.Level) Outcome {
	out := Outcome{
		Source: "level:" + lvl.ID,
		Grid:   lvl.Grid,
		Start:  lvl.Start,
		End:    lvl.End,
	}
	return r.solve(out)
}

func (r *Runner) solve(out Outcome) Outcome {
	out.Result = pathfind.FindPath(out.Grid, out.Start, out.End)

	if out.Result.Found {
		if err := pathfind.ValidatePath(out.Grid, out.Start, out.End, out.Result.Path); err != nil {
			r.logger.Error("search returned an invalid path", "error", err)
		}
	}

	r.logger.Info("search finished",
		"source", out.Source,
		"found", out.Result.Found,
		"steps", out.Result.Steps(),
	)

	if r.store == nil {
		return out
	}
	id, err := r.store.SaveRun(storage.Run{
		Source:    out.Source,
		Rows:      out.Grid.Rows,
		Cols:      out.Grid.Cols,
		Seed:      out.Seed,
		Obstacles: out.Grid.Count(core.Obstacle),
		Found:     out.Result.Found,
		Steps:     out.Result.Steps(),
	})
	if err != nil {
		// History is best effort; the run itself succeeded.
		r.logger.Warn("could not record run", "error", err)
		return out
	}
	out.ID = id
	return out
}
