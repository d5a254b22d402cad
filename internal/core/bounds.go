package core

import (
	"errors"
	"fmt"
)

// Grid dimension limits, inclusive.
const (
	MinSize = 5
	MaxSize = 50
)

// ErrInvalidDimensions is returned when rows or cols fall outside [MinSize, MaxSize].
var ErrInvalidDimensions = errors.New("core: grid dimensions must be within [5,50]")

// ValidateDimensions checks rows and cols against the grid size limits.
func ValidateDimensions(rows, cols int) error {
	if rows < MinSize || rows > MaxSize || cols < MinSize || cols > MaxSize {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return nil
}
