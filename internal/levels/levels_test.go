package levels_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pathgrid/internal/core"
	"github.com/vovakirdan/pathgrid/internal/levels"
	"github.com/vovakirdan/pathgrid/internal/pathfind"
)

const wallGapYAML = `
id: test-gap
name: Test gap
rows:
  - "S...."
  - "....."
  - "####."
  - "....."
  - "E...."
`

func TestParseYAML(t *testing.T) {
	lvl, err := levels.ParseYAML([]byte(wallGapYAML))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if lvl.ID != "test-gap" || lvl.Name != "Test gap" {
		t.Errorf("unexpected metadata: %q %q", lvl.ID, lvl.Name)
	}
	if lvl.Start != core.P(0, 0) || lvl.End != core.P(4, 0) {
		t.Errorf("unexpected endpoints %v %v", lvl.Start, lvl.End)
	}
	if got := lvl.Grid.Count(core.Obstacle); got != 4 {
		t.Errorf("expected 4 obstacles, got %d", got)
	}
}

func TestParseYAMLNameDefaultsToID(t *testing.T) {
	data := []byte("id: plain\nrows: [\"S....\", \".....\", \".....\", \".....\", \"....E\"]\n")
	lvl, err := levels.ParseYAML(data)
	if err != nil {
		t.Fatal(err)
	}
	if lvl.Name != "plain" {
		t.Errorf("expected name to default to id, got %q", lvl.Name)
	}
}

func TestParseRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"empty", nil},
		{"too small", []string{"S..", "...", "..E"}},
		{"ragged", []string{"S....", "....", ".....", ".....", "....E"}},
		{"unknown glyph", []string{"S....", "..x..", ".....", ".....", "....E"}},
		{"path glyph", []string{"S....", "..*..", ".....", ".....", "....E"}},
		{"no start", []string{".....", ".....", ".....", ".....", "....E"}},
		{"two ends", []string{"S...E", ".....", ".....", ".....", "....E"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := levels.ParseRows(tt.rows)
			if !errors.Is(err, levels.ErrInvalidLevel) {
				t.Errorf("expected ErrInvalidLevel, got %v", err)
			}
		})
	}
}

func TestParseRowsTooSmallIsDimensionError(t *testing.T) {
	_, _, _, err := levels.ParseRows([]string{"S...", "....", "....", "...E"})
	if !errors.Is(err, core.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions in chain, got %v", err)
	}
}

func TestParseYAMLMissingID(t *testing.T) {
	_, err := levels.ParseYAML([]byte("rows: [\"S....\"]\n"))
	if !errors.Is(err, levels.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestBuiltinLevels(t *testing.T) {
	all, err := levels.Builtin().LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	want := map[string]int{
		"corridor":   28,
		"open":       8,
		"wall-gap":   12,
		"walled-end": -1,
	}
	if len(all) != len(want) {
		t.Fatalf("expected %d builtin levels, got %d", len(want), len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("levels not sorted: %s before %s", all[i-1].ID, all[i].ID)
		}
	}

	for _, lvl := range all {
		steps, ok := want[lvl.ID]
		if !ok {
			t.Errorf("unexpected level %s", lvl.ID)
			continue
		}
		res := pathfind.FindPath(lvl.Grid, lvl.Start, lvl.End)
		if res.Steps() != steps {
			t.Errorf("level %s: expected %d steps, got %d", lvl.ID, steps, res.Steps())
		}
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "gap.yaml"), []byte(wallGapYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yml"), []byte("id: broken\nrows: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := levels.NewLoader(dir)
	all, err := loader.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].ID != "test-gap" {
		t.Fatalf("expected only test-gap, got %+v", all)
	}

	lvl, err := loader.LoadByID("test-gap")
	if err != nil {
		t.Fatal(err)
	}
	if lvl.FilePath != "nested/gap.yaml" {
		t.Errorf("unexpected file path %q", lvl.FilePath)
	}

	if _, err := loader.LoadByID("missing"); !errors.Is(err, levels.ErrLevelNotFound) {
		t.Errorf("expected ErrLevelNotFound, got %v", err)
	}
}

func TestResolve(t *testing.T) {
	lvl, err := levels.Resolve("open")
	if err != nil {
		t.Fatalf("Resolve(open) failed: %v", err)
	}
	if lvl.ID != "open" {
		t.Errorf("expected open, got %s", lvl.ID)
	}

	file := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(file, []byte(wallGapYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	lvl, err = levels.Resolve(file)
	if err != nil {
		t.Fatalf("Resolve(file) failed: %v", err)
	}
	if lvl.ID != "test-gap" || lvl.FilePath != file {
		t.Errorf("unexpected level %+v", lvl)
	}

	if _, err := levels.Resolve("nope"); !errors.Is(err, levels.ErrLevelNotFound) {
		t.Errorf("expected ErrLevelNotFound, got %v", err)
	}
}
