package config

import (
	_ "embed"
)

//go:embed defaults/pathgrid.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows:           15,
			Cols:           25,
			ObstacleRatio:  0.25,
			MaxEndAttempts: 100,
		},
		Storage: StorageConfig{
			DBPath: "~/.pathgrid/runs.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 10,
		},
	}
}
