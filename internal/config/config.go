// Package config provides YAML-based configuration loading for pathgrid.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/pathgrid/internal/core"
	"github.com/vovakirdan/pathgrid/internal/generator"
)

// Config contains all pathgrid settings.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	SSH     SSHConfig     `yaml:"ssh"`
}

// GridConfig defines default grid size and generation parameters.
type GridConfig struct {
	Rows           int     `yaml:"rows"`
	Cols           int     `yaml:"cols"`
	ObstacleRatio  float64 `yaml:"obstacle_ratio"`
	MaxEndAttempts int     `yaml:"max_end_attempts"`
}

// StorageConfig defines where run history is kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SSHConfig defines the SSH server settings.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// IdleTimeout returns the idle timeout as a duration.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// Params converts the grid section into generator parameters.
// Zero values fall back to the generator defaults.
func (c GridConfig) Params() generator.Params {
	p := generator.DefaultParams()
	if c.ObstacleRatio != 0 {
		p.ObstacleRatio = c.ObstacleRatio
	}
	if c.MaxEndAttempts != 0 {
		p.MaxEndAttempts = c.MaxEndAttempts
	}
	return p
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	if err := core.ValidateDimensions(c.Grid.Rows, c.Grid.Cols); err != nil {
		return fmt.Errorf("config: grid: %w", err)
	}
	if err := c.Grid.Params().Validate(); err != nil {
		return fmt.Errorf("config: grid: %w", err)
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("config: ssh: idle timeout %d is negative", c.SSH.IdleTimeoutMinutes)
	}
	return nil
}
