// pathgrid generates random obstacle grids and finds shortest paths across them.
//
// Usage:
//
//	pathgrid run                  - Generate a grid and search it
//	pathgrid solve <level|file>   - Search a hand-built level
//	pathgrid levels               - List built-in levels
//	pathgrid history              - Show recent runs and statistics
//	pathgrid serve                - Answer runs over SSH
//
// Global flags:
//
//	--config <path>     - Config YAML (default: search ~/.pathgrid, ./configs, embedded)
//	--db <path>         - Run history database (default from config)
//	--log-level <level> - debug, info, warn or error (default from config)
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pathgrid/internal/app"
	"github.com/vovakirdan/pathgrid/internal/config"
	"github.com/vovakirdan/pathgrid/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pathgrid",
	Short: "Random obstacle grids and shortest paths",
	Long: `pathgrid generates a random grid with obstacles, a start cell and an end
cell, then finds the shortest walkable path between them with breadth-first
search.

Available commands:
  run      - Generate a grid and search it
  solve    - Search a built-in level or a level file
  levels   - List built-in levels
  history  - Show recent runs and statistics
  serve    - Answer runs over SSH

Examples:
  pathgrid run --rows 20 --cols 30
  pathgrid run --seed 42
  pathgrid solve wall-gap
  pathgrid solve ./my-level.yaml
  pathgrid history --limit 5`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads and validates the configuration, applying global flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the process logger for the configured level.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "pathgrid",
	})
	level, err := log.ParseLevel(strings.ToLower(cfg.Log.Level))
	if err != nil {
		logger.Warn("unknown log level, using info", "level", cfg.Log.Level)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// newRunner builds a runner, recording runs when record is set and the
// history database opens. Runs still work without it.
func newRunner(cfg config.Config, logger *log.Logger, record bool) (*app.Runner, func()) {
	if !record {
		return app.NewRunner(cfg.Grid.Params(), nil, logger), func() {}
	}
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open run history", "path", cfg.Storage.DBPath, "error", err)
		return app.NewRunner(cfg.Grid.Params(), nil, logger), func() {}
	}
	return app.NewRunner(cfg.Grid.Params(), store, logger), func() { store.Close() }
}
