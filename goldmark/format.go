package goldmark

import (
	"fmt"
	"unicode"

	"github.com/fwojciec/blocks"
)

var _ blocks.InlineFormatter = Formatter{}

// Formatter applies inline styles by wrapping the selected runes in markdown
// emphasis markers and, for colors, a <span color="N"> tag that Render
// understands.
type Formatter struct{}

// ApplyStyle wraps sel in the markers for style. Whitespace at the edges of
// the selection is left outside the markers so that the emphasis still
// parses. A selection that is malformed or only whitespace returns content
// unchanged and an error wrapping blocks.ErrInvalidSelection.
func (Formatter) ApplyStyle(content string, sel blocks.Selection, style blocks.Style) (string, error) {
	if err := sel.Validate(content); err != nil {
		return content, err
	}
	runes := []rune(content)
	start, end := sel.Start, sel.End
	for start < end && unicode.IsSpace(runes[start]) {
		start++
	}
	for end > start && unicode.IsSpace(runes[end-1]) {
		end--
	}
	if start == end {
		return content, fmt.Errorf("selection is only whitespace: %w", blocks.ErrInvalidSelection)
	}

	inner := string(runes[start:end])
	if style.Code {
		inner = "`" + inner + "`"
	}
	if style.Italic {
		inner = "*" + inner + "*"
	}
	if style.Bold {
		inner = "**" + inner + "**"
	}
	if style.Color >= 0 {
		inner = fmt.Sprintf(`<span color="%d">%s</span>`, style.Color, inner)
	}
	return string(runes[:start]) + inner + string(runes[end:]), nil
}
