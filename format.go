package blocks

import (
	"fmt"
	"unicode/utf8"
)

// Selection is a half-open range [Start, End) of rune offsets within a
// block's content.
type Selection struct {
	Start int
	End   int
}

// Validate checks that the selection is non-empty and fits content.
func (s Selection) Validate(content string) error {
	n := utf8.RuneCountInString(content)
	switch {
	case s.Start < 0 || s.End > n:
		return fmt.Errorf("range [%d, %d) outside content of %d runes: %w", s.Start, s.End, n, ErrInvalidSelection)
	case s.Start >= s.End:
		return fmt.Errorf("empty or reversed range [%d, %d): %w", s.Start, s.End, ErrInvalidSelection)
	}
	return nil
}

// Style is the inline styling applied to a selection. Color is an ANSI
// color index; a negative value means no color.
type Style struct {
	Bold   bool
	Italic bool
	Code   bool
	Color  int
}

// NoColor is the Style.Color value meaning "leave the color alone".
const NoColor = -1

// InlineFormatter wraps a selection of a block's content in inline styling
// and returns the new content. A malformed selection returns content
// unchanged together with an error wrapping ErrInvalidSelection.
type InlineFormatter interface {
	ApplyStyle(content string, sel Selection, style Style) (string, error)
}
