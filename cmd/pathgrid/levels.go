package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathgrid/internal/levels"
)

var flagLevelsDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List available levels",
	Long: `Shows the built-in levels, or the levels found under --dir.

Examples:
  pathgrid levels
  pathgrid levels --dir ./my-levels`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsDir, "dir", "", "Directory of level YAML files")
}

func runLevels(_ *cobra.Command, _ []string) {
	loader := levels.Builtin()
	if flagLevelsDir != "" {
		loader = levels.NewLoader(flagLevelsDir)
	}

	all, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(all) == 0 {
		fmt.Println("No levels available.")
		return
	}

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range all {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "----")
	for _, l := range all {
		size := fmt.Sprintf("%dx%d", l.Grid.Rows, l.Grid.Cols)
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, l.ID, size, l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'pathgrid solve <id>' to search a level.")
}
