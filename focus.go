package blocks

// Caret is where the input caret lands when focus moves to a block.
type Caret int

const (
	CaretStart Caret = iota
	CaretEnd
)

// String returns the caret placement name.
func (c Caret) String() string {
	switch c {
	case CaretStart:
		return "start"
	case CaretEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Focus is a focus-transfer request returned by structural edits.
//
// Transfer is a two-step protocol: the caller commits the new Sequence,
// renders it, and only then applies the Focus, because the target block may
// not exist in the rendered output until that render has happened. A Focus
// whose block is gone by the time it is applied must be dropped.
type Focus struct {
	BlockID string
	Caret   Caret
}
