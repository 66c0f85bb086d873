package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tada/internal/ui"
)

// ------- screen styling helpers (Lip Gloss) -------

func frame() lipgloss.Style {
	t := ui.Current()
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
}

// panelString frames the whole screen.
func panelString(inner string) string {
	return frame().Render(inner)
}

// inputBox frames the add/edit form and confirmation prompts.
func inputBox(inner string) string {
	return frame().Render(inner)
}

func errorText(s string) string  { return ui.Current().Error.Render(s) }
func mutedText(s string) string  { return ui.Current().Muted.Render(s) }
func statusText(s string) string { return ui.Current().Success.Render(s) }
