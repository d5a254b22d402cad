package core

// CellState classifies a single grid cell.
type CellState uint8

const (
	Free CellState = iota
	Obstacle
	Start
	End
	Path
)

// Glyphs used by level files.
const (
	GlyphFree     = '.'
	GlyphObstacle = '#'
	GlyphStart    = 'S'
	GlyphEnd      = 'E'
	GlyphPath     = '*'
)

// String returns the state name.
func (s CellState) String() string {
	switch s {
	case Free:
		return "free"
	case Obstacle:
		return "obstacle"
	case Start:
		return "start"
	case End:
		return "end"
	case Path:
		return "path"
	}
	return "unknown"
}

// Glyph returns the single-character form of the state.
func (s CellState) Glyph() rune {
	switch s {
	case Obstacle:
		return GlyphObstacle
	case Start:
		return GlyphStart
	case End:
		return GlyphEnd
	case Path:
		return GlyphPath
	}
	return GlyphFree
}

// ParseGlyph converts a level glyph into a cell state.
// Returns false for unknown characters.
func ParseGlyph(r rune) (CellState, bool) {
	switch r {
	case GlyphFree:
		return Free, true
	case GlyphObstacle:
		return Obstacle, true
	case GlyphStart:
		return Start, true
	case GlyphEnd:
		return End, true
	case GlyphPath:
		return Path, true
	}
	return Free, false
}

// Walkable reports whether the pathfinder may step onto a cell in this state.
func (s CellState) Walkable() bool {
	return s != Obstacle
}
