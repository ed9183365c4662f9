package bubbletea_test

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/blocks"
	bt "github.com/fwojciec/blocks/bubbletea"
	"github.com/stretchr/testify/require"
)

// newSeq creates a sequence with ids b1..bN for the given contents. Blocks
// created by splits get ids n1, n2, ...
func newSeq(t *testing.T, contents ...string) blocks.Sequence {
	t.Helper()
	bs := make([]blocks.Block, len(contents))
	for i, c := range contents {
		bs[i] = blocks.Block{ID: fmt.Sprintf("b%d", i+1), Content: c}
	}
	n := 0
	seq, err := blocks.NewSequence(bs, blocks.WithIDFunc(func() string {
		n++
		return fmt.Sprintf("n%d", n)
	}))
	require.NoError(t, err)
	return seq
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, seq blocks.Sequence, cfg bt.Config) bt.Model {
	t.Helper()
	return initModelWithSize(t, seq, cfg, 80, 24)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, seq blocks.Sequence, cfg bt.Config, width, height int) bt.Model {
	t.Helper()
	m := bt.New(seq, blocks.DefaultTheme(), cfg)
	return updateModel(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	model, _ := update(t, m, msg)
	return model
}

// update sends a message and returns the updated Model and command.
func update(t *testing.T, m bt.Model, msg tea.Msg) (bt.Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model, cmd
}

// deliverFocus runs cmd, which must produce a FocusMsg, and feeds the
// message back to the model.
func deliverFocus(t *testing.T, m bt.Model, cmd tea.Cmd) bt.Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(bt.FocusMsg)
	require.True(t, ok, "command must produce a FocusMsg")
	return updateModel(t, m, msg)
}

func typeText(t *testing.T, m bt.Model, s string) bt.Model {
	t.Helper()
	for _, r := range s {
		m = updateModel(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func altKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}, Alt: true}
}

func ids(seq blocks.Sequence) []string {
	out := make([]string, 0, seq.Len())
	for _, b := range seq.Blocks() {
		out = append(out, b.ID)
	}
	return out
}

func contents(seq blocks.Sequence) []string {
	out := make([]string, 0, seq.Len())
	for _, b := range seq.Blocks() {
		out = append(out, b.Content)
	}
	return out
}
