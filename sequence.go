package blocks

import (
	"fmt"
	"slices"
)

// maxIDAttempts bounds how often SplitAt retries an IDFunc that keeps
// returning ids already present in the sequence.
const maxIDAttempts = 8

// Sequence is the ordered collection of blocks forming a document.
//
// A Sequence is an immutable value: every operation returns a new Sequence
// and never writes through to the receiver's storage. It always holds at
// least one block, ids are unique, and the focused id (when set) names a
// block in the sequence.
type Sequence struct {
	blocks  []Block
	focused string
	newID   IDFunc
}

// SequenceOption configures a Sequence at construction.
type SequenceOption func(*Sequence)

// WithIDFunc sets the generator used for ids of blocks created by SplitAt
// and for the default block of an empty sequence.
func WithIDFunc(fn IDFunc) SequenceOption {
	return func(s *Sequence) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewSequence creates a Sequence from blocks in document order. With no
// blocks it holds one default empty block.
func NewSequence(blocks []Block, opts ...SequenceOption) (Sequence, error) {
	s := Sequence{newID: NewID}
	for _, opt := range opts {
		opt(&s)
	}
	if len(blocks) == 0 {
		s.blocks = []Block{{ID: s.newID()}}
		return s, nil
	}
	seen := make(map[string]struct{}, len(blocks))
	for i, b := range blocks {
		if b.ID == "" {
			return Sequence{}, fmt.Errorf("block %d: %w", i, ErrEmptyID)
		}
		if _, ok := seen[b.ID]; ok {
			return Sequence{}, fmt.Errorf("block %d id %q: %w", i, b.ID, ErrDuplicateID)
		}
		seen[b.ID] = struct{}{}
	}
	s.blocks = slices.Clone(blocks)
	return s, nil
}

// Len returns the number of blocks.
func (s Sequence) Len() int { return len(s.blocks) }

// Blocks returns a copy of the blocks in document order.
func (s Sequence) Blocks() []Block { return slices.Clone(s.blocks) }

// At returns the block at index i.
func (s Sequence) At(i int) (Block, bool) {
	if !s.valid(i) {
		return Block{}, false
	}
	return s.blocks[i], true
}

// IndexOf returns the position of the block with the given id, or -1.
func (s Sequence) IndexOf(id string) int {
	return slices.IndexFunc(s.blocks, func(b Block) bool { return b.ID == id })
}

// Focused returns the focused block id, or "" when nothing is focused.
func (s Sequence) Focused() string { return s.focused }

// FocusedIndex returns the position of the focused block, or -1.
func (s Sequence) FocusedIndex() int {
	if s.focused == "" {
		return -1
	}
	return s.IndexOf(s.focused)
}

// Focus marks the block with the given id as focused. Unknown ids are
// ignored.
func (s Sequence) Focus(id string) Sequence {
	if s.IndexOf(id) < 0 {
		return s
	}
	s.focused = id
	return s
}

// Blur clears the focused block.
func (s Sequence) Blur() Sequence {
	s.focused = ""
	return s
}

// SplitAt inserts a new empty block immediately after index and returns a
// Focus request for it with the caret at its start.
//
// caretOffset is the caret position within the block at index when the
// split was requested. Splitting never moves text between blocks, so it has
// no effect on the result.
//
// An invalid index leaves the sequence unchanged and reports false.
func (s Sequence) SplitAt(index, caretOffset int) (Sequence, Focus, bool) {
	if !s.valid(index) {
		return s, Focus{}, false
	}
	id, ok := s.freshID()
	if !ok {
		return s, Focus{}, false
	}
	s.blocks = slices.Insert(slices.Clone(s.blocks), index+1, Block{ID: id})
	return s, Focus{BlockID: id, Caret: CaretStart}, true
}

// MergeAt removes the block at index when its content is empty and it is not
// the only block. It returns a Focus request for the block that preceded
// the removed one (the first block when index was 0), with the caret at the
// end of its content. The preceding block's content is left untouched.
//
// In every other case the sequence is unchanged and MergeAt reports false.
func (s Sequence) MergeAt(index int) (Sequence, Focus, bool) {
	if !s.valid(index) || len(s.blocks) < 2 || !s.blocks[index].Empty() {
		return s, Focus{}, false
	}
	removed := s.blocks[index].ID
	s.blocks = slices.Delete(slices.Clone(s.blocks), index, index+1)
	if s.focused == removed {
		s.focused = ""
	}
	target := s.blocks[max(0, index-1)]
	return s, Focus{BlockID: target.ID, Caret: CaretEnd}, true
}

// UpdateContent replaces the content of the block with the given id.
// Content updates can race structural edits, so an unknown id is a no-op.
func (s Sequence) UpdateContent(id, content string) Sequence {
	i := s.IndexOf(id)
	if i < 0 || s.blocks[i].Content == content {
		return s
	}
	s.blocks = slices.Clone(s.blocks)
	s.blocks[i].Content = content
	return s
}

// Move relocates the block at from to position to. Out-of-range indices
// and from == to leave the sequence unchanged.
func (s Sequence) Move(from, to int) Sequence {
	sp := Splice{From: from, To: to}
	if !sp.Valid(len(s.blocks)) || sp.Noop() {
		return s
	}
	s.blocks = ApplySplice(s.blocks, sp)
	return s
}

func (s Sequence) valid(i int) bool {
	return i >= 0 && i < len(s.blocks)
}

func (s Sequence) freshID() (string, bool) {
	gen := s.newID
	if gen == nil {
		gen = NewID
	}
	for range maxIDAttempts {
		id := gen()
		if id != "" && s.IndexOf(id) < 0 {
			return id, true
		}
	}
	return "", false
}
