package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathgrid/internal/levels"
)

var solveCmd = &cobra.Command{
	Use:   "solve <level-id|file.yaml>",
	Short: "Find the shortest path on a hand-built level",
	Long: `Search a built-in level by ID, or a level YAML file by path.

Level files list rows of glyphs: '.' free, '#' obstacle, 'S' start, 'E' end.

Examples:
  pathgrid solve wall-gap
  pathgrid solve ./levels/maze.yaml --path`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagShowPath, "path", false, "Print the path positions")
	solveCmd.Flags().BoolVar(&flagNoHistory, "no-history", false, "Do not record the run")
}

func runSolve(_ *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	lvl, err := levels.Resolve(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'pathgrid levels' to see built-in levels.")
		os.Exit(1)
	}

	runner, closeStore := newRunner(cfg, logger, !flagNoHistory)
	defer closeStore()

	out := runner.Level(lvl)
	fmt.Printf("Level %s (%s)  %dx%d  start %v  end %v\n",
		lvl.ID, lvl.Name, lvl.Grid.Rows, lvl.Grid.Cols, lvl.Start, lvl.End)
	printOutcome(out)
}
