// Package goldmark renders the inline markdown of a block to ANSI-styled
// terminal output using goldmark for parsing and lipgloss for styling, and
// applies inline styles to selections of block content.
package goldmark

import "github.com/fwojciec/blocks"

// Render parses a block's content and returns ANSI-styled terminal output
// word-wrapped to width. Only inline syntax is styled: emphasis, code spans,
// links and colored spans. Block-level syntax such as headings or lists is
// shown literally because a block is a single run of text.
func Render(source string, width int, theme blocks.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}
