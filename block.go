// Package blocks defines the domain types for a block editor: an ordered
// sequence of text blocks, the focus transfers produced by editing it, and
// pointer-driven drag reordering.
package blocks

import "github.com/google/uuid"

// Block is one unit of editable text with a stable identity.
type Block struct {
	ID      string
	Content string
}

// Empty reports whether the block has no content.
func (b Block) Empty() bool { return b.Content == "" }

// IDFunc generates a block id. Uniqueness is the only required property.
type IDFunc func() string

// NewID returns a random UUID string. It is the default IDFunc.
func NewID() string {
	return uuid.NewString()
}
