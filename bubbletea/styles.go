package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/blocks"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Handle      lipgloss.Style
	Focus       lipgloss.Style
	Drag        lipgloss.Style
	Placeholder lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t blocks.Theme) Styles {
	return Styles{
		Handle:      lipgloss.NewStyle().Foreground(ansiColor(t.Handle)).Bold(true),
		Focus:       lipgloss.NewStyle().Foreground(ansiColor(t.Focus)),
		Drag:        lipgloss.NewStyle().Background(ansiColor(t.Drag)),
		Placeholder: lipgloss.NewStyle().Foreground(ansiColor(t.Placeholder)).Faint(true),
		Muted:       lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Error:       lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
