package bubbletea

import (
	"strings"

	"github.com/fwojciec/blocks"
	"github.com/fwojciec/blocks/goldmark"
)

// placeholder is shown in empty blocks that do not have focus.
const placeholder = "Type '/' for commands"

// blockState captures how a single block is drawn.
type blockState struct {
	focused bool
	hovered bool
	dragged bool
}

// renderBlock renders one block as one or more lines, each prefixed with
// the handle gutter.
func (m Model) renderBlock(b blocks.Block, st blockState, width int) []string {
	gutter := m.layout.gutter
	bodyWidth := max(width-gutter, 1)

	var body string
	switch {
	case st.focused:
		body = m.Input.View()
	case b.Empty():
		body = m.styles.Placeholder.Render(placeholder)
	default:
		body = goldmark.Render(b.Content, bodyWidth, m.theme)
	}

	lines := strings.Split(body, "\n")
	pad := strings.Repeat(" ", gutter)
	for i, line := range lines {
		prefix := pad
		if i == 0 {
			prefix = m.gutter(st)
		}
		if st.dragged {
			line = m.styles.Drag.Render(line)
		}
		lines[i] = prefix + line
	}
	return lines
}

func (m Model) gutter(st blockState) string {
	switch {
	case st.dragged || st.hovered:
		return " " + m.styles.Handle.Render(handleGlyph) + " "
	case st.focused:
		return " " + m.styles.Focus.Render(focusGlyph) + " "
	default:
		return strings.Repeat(" ", m.layout.gutter)
	}
}
