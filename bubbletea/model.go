package bubbletea

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/blocks"
	"github.com/rivo/uniseg"
	"go.uber.org/zap"
)

var _ tea.Model = Model{}

// Config configures the editor host. Zero fields fall back to defaults: no
// inline formatting, a no-op logger and DefaultKeyMap.
type Config struct {
	Mode      blocks.DragMode
	Formatter blocks.InlineFormatter
	Logger    *zap.Logger
	KeyMap    KeyMap
}

// Model is the Bubble Tea model for the block editor.
type Model struct {
	// Input edits the focused block. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable block area. Exported for test access.
	Viewport viewport.Model

	seq    blocks.Sequence
	drag   blocks.DragReorder
	layout *layout
	theme  blocks.Theme
	styles Styles
	keys   KeyMap
	format blocks.InlineFormatter
	logger *zap.Logger

	mark  int // selection anchor in runes, -1 when unset
	err   error
	ready bool
}

// New creates an editor over seq. The focused block of seq, or the first
// block when nothing is focused, starts with the caret at its end.
func New(seq blocks.Sequence, theme blocks.Theme, cfg Config) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0

	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if len(cfg.KeyMap.Split.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}

	l := newLayout()
	m := Model{
		Input:  ti,
		seq:    seq,
		drag:   blocks.NewDragReorder(cfg.Mode, l),
		layout: l,
		theme:  theme,
		styles: NewStyles(theme),
		keys:   cfg.KeyMap,
		format: cfg.Formatter,
		logger: cfg.Logger,
		mark:   -1,
	}

	id := seq.Focused()
	if id == "" {
		if b, ok := seq.At(0); ok {
			id = b.ID
		}
	}
	m, _ = m.applyFocus(blocks.Focus{BlockID: id, Caret: blocks.CaretEnd})
	return m
}

// Sequence returns the document as currently edited.
func (m Model) Sequence() blocks.Sequence { return m.seq }

// Dragging reports whether a drag gesture is active.
func (m Model) Dragging() bool { return m.drag.Dragging() }

// Err returns the last formatting error, if any.
func (m Model) Err() error { return m.err }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case FocusMsg:
		return m.finishFocus(msg.Focus)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	// Cursor blink and other input housekeeping.
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m.refresh(), cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	borderHeight := 1
	vpHeight := max(msg.Height-statusHeight-borderHeight, 1)

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}

	m.Input.Width = max(msg.Width-m.layout.gutter-1, 1)
	return m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.drag.Dragging() && key.Matches(msg, m.keys.Cancel):
		m.drag.Cancel()
		m.logger.Debug("drag cancelled")
		return m.refresh(), nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Split):
		return m.split()
	case key.Matches(msg, m.keys.Merge) && m.Input.Value() == "":
		return m.merge()
	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)
	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(msg, m.keys.Mark):
		m.mark = m.Input.Position()
		return m.refresh(), nil
	case key.Matches(msg, m.keys.Bold):
		return m.applyStyle(blocks.Style{Bold: true, Color: blocks.NoColor})
	case key.Matches(msg, m.keys.Italic):
		return m.applyStyle(blocks.Style{Italic: true, Color: blocks.NoColor})
	case key.Matches(msg, m.keys.Code):
		return m.applyStyle(blocks.Style{Code: true, Color: blocks.NoColor})
	case key.Matches(msg, m.keys.Color):
		return m.applyStyle(blocks.Style{Color: m.theme.Accent})
	}

	id := m.seq.Focused()
	if id == "" {
		return m, nil
	}
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	m.seq = m.seq.UpdateContent(id, m.Input.Value())
	return m.refresh(), cmd
}

// split inserts an empty block after the focused one. Keys that arrive
// before FocusMsg already edit the new block; only scrolling waits for the
// render.
func (m Model) split() (tea.Model, tea.Cmd) {
	index := m.seq.FocusedIndex()
	seq, focus, ok := m.seq.SplitAt(index, m.Input.Position())
	if !ok {
		return m, nil
	}
	m.seq = seq
	m = m.loadFocus(focus)
	m.logger.Debug("split block",
		zap.Int("index", index),
		zap.String("new_id", focus.BlockID),
	)
	return m.refresh(), focusCmd(focus)
}

// merge removes the focused block when it is empty and moves editing to
// its predecessor straight away.
func (m Model) merge() (tea.Model, tea.Cmd) {
	index := m.seq.FocusedIndex()
	removed := m.seq.Focused()
	seq, focus, ok := m.seq.MergeAt(index)
	if !ok {
		return m, nil
	}
	m.seq = seq
	m = m.loadFocus(focus)
	m.logger.Debug("merge block",
		zap.Int("index", index),
		zap.String("removed_id", removed),
		zap.String("focus_id", focus.BlockID),
	)
	return m.refresh(), focusCmd(focus)
}

func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	index := m.seq.FocusedIndex()
	if index < 0 {
		return m, nil
	}
	b, ok := m.seq.At(index + delta)
	if !ok {
		return m, nil
	}
	return m.applyFocus(blocks.Focus{BlockID: b.ID, Caret: blocks.CaretEnd})
}

// applyFocus moves focus to an existing block in one step. A target
// removed in the meantime is ignored.
func (m Model) applyFocus(f blocks.Focus) (Model, tea.Cmd) {
	index := m.seq.IndexOf(f.BlockID)
	if index < 0 {
		m.logger.Debug("focus target gone", zap.String("id", f.BlockID))
		return m, nil
	}
	m = m.loadFocus(f)
	cmd := m.Input.Focus()
	return m.refresh().scrollTo(index), cmd
}

// loadFocus commits f to the sequence and loads the target block into the
// input with the caret placed. The target must exist.
func (m Model) loadFocus(f blocks.Focus) Model {
	m.seq = m.seq.Focus(f.BlockID)
	b, _ := m.seq.At(m.seq.FocusedIndex())
	m.Input.SetValue(b.Content)
	switch f.Caret {
	case blocks.CaretStart:
		m.Input.CursorStart()
	default:
		m.Input.CursorEnd()
	}
	m.mark = -1
	m.err = nil
	return m
}

// finishFocus completes a deferred transfer once its block has been
// rendered. A request superseded by a later edit, or whose block is gone,
// is dropped.
func (m Model) finishFocus(f blocks.Focus) (Model, tea.Cmd) {
	if f.BlockID != m.seq.Focused() {
		m.logger.Debug("focus request superseded", zap.String("id", f.BlockID))
		return m, nil
	}
	cmd := m.Input.Focus()
	return m.refresh().scrollTo(m.seq.FocusedIndex()), cmd
}

func (m Model) applyStyle(style blocks.Style) (tea.Model, tea.Cmd) {
	id := m.seq.Focused()
	if id == "" || m.format == nil {
		return m, nil
	}
	out, err := m.format.ApplyStyle(m.Input.Value(), m.selection(), style)
	if err != nil {
		m.err = err
		m.logger.Debug("format rejected", zap.Error(err))
		return m.refresh(), nil
	}
	m.err = nil
	m.mark = -1
	m.seq = m.seq.UpdateContent(id, out)
	m.Input.SetValue(out)
	m.Input.CursorEnd()
	return m.refresh(), nil
}

// selection spans the mark and the caret, or the whole block without a mark.
func (m Model) selection() blocks.Selection {
	pos := m.Input.Position()
	if m.mark < 0 {
		return blocks.Selection{Start: 0, End: utf8.RuneCountInString(m.Input.Value())}
	}
	return blocks.Selection{Start: min(m.mark, pos), End: max(m.mark, pos)}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if isWheel(msg) {
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m.refresh(), cmd
	}

	p := blocks.Point{X: msg.X, Y: msg.Y}
	index, onBlock := m.layout.HitTest(msg.X, msg.Y)
	if !onBlock {
		index = -1
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !onBlock || m.drag.Dragging() {
			return m, nil
		}
		if m.layout.onHandle(msg.X) {
			if m.drag.Start(index, m.seq.Len(), p) {
				m.logger.Debug("drag started", zap.Int("index", index))
			}
			return m.refresh(), nil
		}
		b, _ := m.seq.At(index)
		if b.ID == m.seq.Focused() {
			return m, nil
		}
		return m.applyFocus(blocks.Focus{BlockID: b.ID, Caret: blocks.CaretEnd})

	case tea.MouseActionMotion:
		if index != m.drag.Hovered() {
			m.drag.Hover(index)
		}
		if sp, ok := m.drag.Move(p, m.seq.Len()); ok {
			m.seq = m.seq.Move(sp.From, sp.To)
			m.logger.Debug("drag splice", zap.Int("from", sp.From), zap.Int("to", sp.To))
		}
		return m.refresh(), nil

	case tea.MouseActionRelease:
		if s, ok := m.drag.Session(); ok {
			m.drag.End()
			m.logger.Debug("drag ended",
				zap.Int("from", s.DraggedIndex),
				zap.Int("to", s.CurrentIndex),
			)
		}
		return m.refresh(), nil
	}
	return m, nil
}

// refresh re-renders the blocks into the viewport and rebuilds the layout
// used for hit testing.
func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	m.Viewport.SetContent(m.renderContent())
	m.layout.offset = m.Viewport.YOffset
	return m
}

// scrollTo brings the first line of the block at index into view.
func (m Model) scrollTo(index int) Model {
	if !m.ready {
		return m
	}
	row := m.layout.firstRow(index)
	switch {
	case row < 0:
	case row < m.Viewport.YOffset:
		m.Viewport.SetYOffset(row)
	case row >= m.Viewport.YOffset+m.Viewport.Height:
		m.Viewport.SetYOffset(row - m.Viewport.Height + 1)
	}
	m.layout.offset = m.Viewport.YOffset
	return m
}

func (m Model) renderContent() string {
	m.layout.reset(m.Viewport.YOffset, m.Viewport.Height)

	focused := m.seq.FocusedIndex()
	hovered := m.drag.Hovered()
	current := -1
	if s, ok := m.drag.Session(); ok {
		current = s.CurrentIndex
	}

	var lines []string
	for i, b := range m.seq.Blocks() {
		st := blockState{
			focused: i == focused,
			hovered: i == hovered,
			dragged: i == current,
		}
		rendered := m.renderBlock(b, st, m.Viewport.Width)
		m.layout.add(i, len(rendered))
		lines = append(lines, rendered...)
	}
	return strings.Join(lines, "\n")
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var parts []string
	if i := m.seq.FocusedIndex(); i >= 0 {
		parts = append(parts,
			fmt.Sprintf("block %d/%d", i+1, m.seq.Len()),
			fmt.Sprintf("%d chars", uniseg.GraphemeClusterCount(m.Input.Value())),
		)
	} else {
		parts = append(parts, fmt.Sprintf("%d blocks", m.seq.Len()))
	}
	if m.mark >= 0 {
		parts = append(parts, fmt.Sprintf("mark %d", m.mark))
	}
	if s, ok := m.drag.Session(); ok {
		off := s.Offset()
		parts = append(parts, fmt.Sprintf("dragging %d→%d (%+d,%+d)", s.DraggedIndex+1, s.CurrentIndex+1, off.X, off.Y))
	} else {
		parts = append(parts, m.drag.Mode().String()+" drag")
	}
	return m.styles.Muted.Render(strings.Join(parts, " · "))
}

func isWheel(msg tea.MouseMsg) bool {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}
