// Package bubbletea provides a Bubble Tea terminal host for the block editor.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/blocks"
)

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits. All pointer motion is reported so hover tracking works
// without a button held.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// FocusMsg completes a focus transfer after the render that follows a
// structural edit: the input regains its cursor and the block is scrolled
// into view. The sequence's focus itself is committed with the edit.
type FocusMsg struct {
	Focus blocks.Focus
}

// focusCmd defers f to the next message cycle, after the edit that produced
// it has been rendered.
func focusCmd(f blocks.Focus) tea.Cmd {
	return func() tea.Msg {
		return FocusMsg{Focus: f}
	}
}
