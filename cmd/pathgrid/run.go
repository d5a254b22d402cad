package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathgrid/internal/app"
	"github.com/vovakirdan/pathgrid/internal/core"
)

var (
	flagRows      int
	flagCols      int
	flagSeed      uint64
	flagShowPath  bool
	flagNoHistory bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate a random grid and find the shortest path",
	Long: `Generate a rows x cols grid (each within [5,50]) with 25% obstacles,
place a start and an end cell, and search for the shortest path.

Examples:
  pathgrid run
  pathgrid run --rows 5 --cols 5
  pathgrid run --rows 50 --cols 50 --seed 7 --path`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows (default from config)")
	runCmd.Flags().IntVar(&flagCols, "cols", 0, "Grid columns (default from config)")
	runCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	runCmd.Flags().BoolVar(&flagShowPath, "path", false, "Print the path positions")
	runCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record the run")
}

func runRun(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	rows, cols := cfg.Grid.Rows, cfg.Grid.Cols
	if flagRows != 0 {
		rows = flagRows
	}
	if flagCols != 0 {
		cols = flagCols
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	runner, closeStore := newRunner(cfg, logger, !flagNoHistory)
	defer closeStore()

	out, err := runner.Random("random", rows, cols, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Grid %dx%d  seed %d  start %v  end %v  obstacles %d\n",
		out.Grid.Rows, out.Grid.Cols, out.Seed, out.Start, out.End, out.Grid.Count(core.Obstacle))
	printOutcome(out)
}

// printOutcome writes the result line and, when requested, the path.
func printOutcome(out app.Outcome) {
	fmt.Println(app.Report(out))
	if flagShowPath && out.Result.Found {
		fmt.Println("Path:", formatPath(out.Result.Path))
	}
	if out.ID != "" {
		fmt.Printf("Run: %s\n", out.ID)
	}
}

func formatPath(path []core.Position) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}
	return strings.Join(parts, " -> ")
}
