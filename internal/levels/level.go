// Package levels loads hand-built grids from YAML files.
//
// A level lists its rows as glyph strings:
//
//	id: wall-gap
//	name: Wall with a single gap
//	rows:
//	  - "S...."
//	  - "####."
//	  - "....E"
//
// '.' is free, '#' an obstacle, 'S' the start and 'E' the end.
package levels

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pathgrid/internal/core"
)

var (
	// ErrInvalidLevel indicates a level file that does not describe a usable grid.
	ErrInvalidLevel = errors.New("levels: invalid level")
	// ErrLevelNotFound indicates no level with the requested ID exists.
	ErrLevelNotFound = errors.New("levels: level not found")
)

// YAMLLevel is the on-disk structure of a level file.
type YAMLLevel struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Rows        []string `yaml:"rows"`
}

// Level is a parsed, validated level.
type Level struct {
	ID          string
	Name        string
	Description string
	Grid        *core.Grid
	Start       core.Position
	End         core.Position
	FilePath    string
}

// ParseYAML parses and validates a level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, fmt.Errorf("%w: missing id", ErrInvalidLevel)
	}

	g, start, end, err := ParseRows(yl.Rows)
	if err != nil {
		return Level{}, fmt.Errorf("level %s: %w", yl.ID, err)
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:          yl.ID,
		Name:        name,
		Description: yl.Description,
		Grid:        g,
		Start:       start,
		End:         end,
	}, nil
}

// ParseRows builds a grid from glyph rows. The rows must be rectangular,
// within the grid size limits, and hold exactly one 'S' and one 'E'.
func ParseRows(rows []string) (*core.Grid, core.Position, core.Position, error) {
	var start, end core.Position

	if len(rows) == 0 {
		return nil, start, end, fmt.Errorf("%w: no rows", ErrInvalidLevel)
	}
	width := len([]rune(rows[0]))
	if err := core.ValidateDimensions(len(rows), width); err != nil {
		return nil, start, end, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
	}

	g := core.NewGrid(len(rows), width)
	starts, ends := 0, 0
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != width {
			return nil, start, end, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidLevel, r, len(runes), width)
		}
		for c, ch := range runes {
			state, ok := core.ParseGlyph(ch)
			if !ok || state == core.Path {
				return nil, start, end, fmt.Errorf("%w: unknown glyph %q at (%d,%d)", ErrInvalidLevel, ch, r, c)
			}
			p := core.P(r, c)
			switch state {
			case core.Start:
				start = p
				starts++
			case core.End:
				end = p
				ends++
			}
			g.Set(p, state)
		}
	}

	if starts != 1 || ends != 1 {
		return nil, start, end, fmt.Errorf("%w: need exactly one S and one E, got %d and %d", ErrInvalidLevel, starts, ends)
	}
	return g, start, end, nil
}
