package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Result message texts.
const (
	msgFound    = "Shortest Path Found! Length: %d steps"
	msgNotFound = "Not Possible - No path exists!"
)

var (
	foundStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	notFoundStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

// Message returns the plain result line for an outcome.
func Message(o Outcome) string {
	if o.Result.Found {
		return fmt.Sprintf(msgFound, o.Result.Steps())
	}
	return msgNotFound
}

// Report returns the result line styled for a terminal.
func Report(o Outcome) string {
	if o.Result.Found {
		return foundStyle.Render(Message(o))
	}
	return notFoundStyle.Render(Message(o))
}
