package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/blocks"
	bt "github.com/fwojciec/blocks/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestNewStyles(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(blocks.DefaultTheme())

	assert.Equal(t, lipgloss.Color("4"), styles.Handle.GetForeground())
	assert.True(t, styles.Handle.GetBold())

	assert.Equal(t, lipgloss.Color("4"), styles.Focus.GetForeground())
	assert.Equal(t, lipgloss.Color("6"), styles.Drag.GetBackground())

	assert.Equal(t, lipgloss.Color("8"), styles.Placeholder.GetForeground())
	assert.True(t, styles.Placeholder.GetFaint())

	assert.Equal(t, lipgloss.Color("8"), styles.Muted.GetForeground())
	assert.Equal(t, lipgloss.Color("1"), styles.Error.GetForeground())
}

func TestNewStylesNegativeIndexYieldsNoColor(t *testing.T) {
	t.Parallel()

	theme := blocks.DefaultTheme()
	theme.Drag = -1
	styles := bt.NewStyles(theme)

	assert.Equal(t, lipgloss.NoColor{}, styles.Drag.GetBackground())
}

func TestDefaultKeyMap(t *testing.T) {
	t.Parallel()

	km := bt.DefaultKeyMap()
	assert.Equal(t, []string{"enter"}, km.Split.Keys())
	assert.Equal(t, []string{"backspace"}, km.Merge.Keys())
	assert.Equal(t, []string{"ctrl+@"}, km.Mark.Keys())
	assert.Contains(t, km.Quit.Keys(), "esc")
	assert.Equal(t, "bold", km.Bold.Help().Desc)
}
