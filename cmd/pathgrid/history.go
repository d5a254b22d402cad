package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathgrid/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs and statistics",
	Long: `Display the most recent recorded runs and aggregate statistics.

Examples:
  pathgrid history
  pathgrid history --limit 50
  pathgrid history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not open run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	runs, err := store.RecentRuns(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println("Run 'pathgrid run' to generate one.")
		return
	}

	fmt.Printf("  %-19s  %-18s  %-7s  %s\n", "Date", "Source", "Size", "Result")
	fmt.Printf("  %-19s  %-18s  %-7s  %s\n", "----", "------", "----", "------")
	for _, r := range runs {
		result := "no path"
		if r.Found {
			result = fmt.Sprintf("%d steps", r.Steps)
		}
		size := fmt.Sprintf("%dx%d", r.Rows, r.Cols)
		fmt.Printf("  %-19s  %-18s  %-7s  %s\n", r.CreatedAt.Format("2006-01-02 15:04:05"), r.Source, size, result)
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	fmt.Printf("Total runs: %d  Paths found: %d (%.0f%%)  Avg steps: %.1f  Longest: %d\n",
		stats.Runs, stats.Found, stats.SuccessRate()*100, stats.AvgSteps, stats.MaxSteps)
}
