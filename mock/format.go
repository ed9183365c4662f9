package mock

import "github.com/fwojciec/blocks"

// Interface compliance check.
var _ blocks.InlineFormatter = (*InlineFormatter)(nil)

// InlineFormatter is a test double for blocks.InlineFormatter.
// Set ApplyStyleFn before calling ApplyStyle.
type InlineFormatter struct {
	ApplyStyleFn func(content string, sel blocks.Selection, style blocks.Style) (string, error)
}

// ApplyStyle delegates to ApplyStyleFn.
func (f *InlineFormatter) ApplyStyle(content string, sel blocks.Selection, style blocks.Style) (string, error) {
	return f.ApplyStyleFn(content, sel, style)
}
