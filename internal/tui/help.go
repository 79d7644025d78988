package tui

import (
	_ "embed"
	"log/slog"

	"github.com/charmbracelet/glamour"
)

//go:embed help.md
var helpContent string

// viewHelp renders the markdown help screen.
func (m Model) viewHelp() string {
	rendered, err := glamour.Render(helpContent, "dark")
	if err != nil {
		slog.Warn("failed to render help", "error", err)
		return helpContent
	}
	return rendered
}
