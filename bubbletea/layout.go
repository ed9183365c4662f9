package bubbletea

import (
	"github.com/fwojciec/blocks"
	"github.com/mattn/go-runewidth"
)

// handleGlyph is drawn in the gutter of the hovered or dragged block.
const handleGlyph = "⠿"

// focusGlyph marks the focused block when no handle is drawn.
const focusGlyph = "│"

var _ blocks.HitTester = (*layout)(nil)

// layout records which block each rendered line belongs to. It is rebuilt
// on every render, so hit tests always reflect what is on screen.
type layout struct {
	rows   []int // block index per content line
	offset int   // first visible content line
	height int   // visible lines
	gutter int   // cells reserved for the handle
}

func newLayout() *layout {
	return &layout{gutter: runewidth.StringWidth(handleGlyph) + 2}
}

// HitTest maps viewport coordinates to the block drawn there.
func (l *layout) HitTest(x, y int) (int, bool) {
	if x < 0 || y < 0 || y >= l.height {
		return 0, false
	}
	line := y + l.offset
	if line >= len(l.rows) {
		return 0, false
	}
	return l.rows[line], true
}

// onHandle reports whether column x lies in the handle gutter.
func (l *layout) onHandle(x int) bool {
	return x >= 0 && x < l.gutter
}

// firstRow returns the first content line of the block at index, or -1.
func (l *layout) firstRow(index int) int {
	for line, i := range l.rows {
		if i == index {
			return line
		}
	}
	return -1
}

func (l *layout) reset(offset, height int) {
	l.rows = l.rows[:0]
	l.offset = offset
	l.height = height
}

func (l *layout) add(index, lines int) {
	for range lines {
		l.rows = append(l.rows, index)
	}
}
