package main

import (
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pathgrid/internal/config"
	"github.com/vovakirdan/pathgrid/internal/core"
)

func TestFormatPath(t *testing.T) {
	got := formatPath([]core.Position{core.P(0, 0), core.P(0, 1), core.P(1, 1)})
	if want := "(0,0) -> (0,1) -> (1,1)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if formatPath(nil) != "" {
		t.Error("empty path should format as empty string")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "DEBUG"
	if got := newLogger(cfg).GetLevel(); got != log.DebugLevel {
		t.Errorf("expected debug level, got %v", got)
	}

	cfg.Log.Level = "loud"
	if got := newLogger(cfg).GetLevel(); got != log.InfoLevel {
		t.Errorf("unknown level should fall back to info, got %v", got)
	}
}
